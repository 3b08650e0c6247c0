package cli

import (
	"path/filepath"
	"runtime/debug"
	"time"

	"github.com/bep/debounce"
	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"go.viam.com/utils"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/encoding/prototext"
	"google.golang.org/protobuf/proto"

	"github.com/robo-bootcamp/gobotic/config"
	"github.com/robo-bootcamp/gobotic/logging"
	"github.com/robo-bootcamp/gobotic/referenceframe"
	"github.com/robo-bootcamp/gobotic/worldfile"
)

// Version is the version of the tool, set at build time.
var Version = ""

// watchDebounce is how long the file must stay unchanged before it is validated again.
const watchDebounce = 100 * time.Millisecond

var errNoWorldFile = errors.New("no world file given, pass one as an argument or set world_file with --config")

// worldArgs is what every command needs to load a world.
type worldArgs struct {
	path   string
	opts   []worldfile.Option
	logger logging.Logger
}

// parseWorldArgs merges the config file, the global flags and the positional argument. Flags win
// over the config file.
func parseWorldArgs(c *cli.Context) (*worldArgs, error) {
	cfg := &config.Config{}
	if path := c.String(configFlag); path != "" {
		read, err := config.Read(path)
		if err != nil {
			return nil, err
		}
		cfg = read
	} else if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}

	switch c.Args().Len() {
	case 0:
	case 1:
		cfg.WorldFile = c.Args().First()
	default:
		return nil, errors.Errorf("expected a single world file but got %d", c.Args().Len())
	}
	if cfg.WorldFile == "" {
		return nil, errNoWorldFile
	}
	if c.Bool(strictFlag) {
		cfg.Strict = true
	}
	if c.IsSet(maxObstaclesFlag) {
		cfg.MaxObstacles = c.Int(maxObstaclesFlag)
	}
	if err := cfg.Validate("flags"); err != nil {
		return nil, err
	}

	var logger logging.Logger
	if c.Bool(debugFlag) {
		logger = logging.NewDebugLogger(c.App.Name, c.App.ErrWriter)
	} else {
		logger = logging.NewLogger(c.App.Name, c.App.ErrWriter)
		logger.SetLevel(cfg.LogLevel)
	}

	return &worldArgs{
		path:   cfg.WorldFile,
		opts:   cfg.LoaderOptions(),
		logger: logger,
	}, nil
}

// ValidateAction is the corresponding Action for 'validate'.
func ValidateAction(c *cli.Context) error {
	args, err := parseWorldArgs(c)
	if err != nil {
		return err
	}
	return reportWorld(c, args)
}

// reportWorld loads the world, prints its warnings and renders it.
func reportWorld(c *cli.Context, args *worldArgs) error {
	world, warnings, err := referenceframe.NewContinuous3DStaticFromFile(args.path, args.logger, args.opts...)
	if err != nil {
		return err
	}
	for _, w := range warnings {
		warningf(c.App.Writer, "%s", w)
	}
	if err := world.Render(c.App.Writer); err != nil {
		return err
	}
	successf(c.App.Writer, "%s is valid with %d obstacles and %d warnings",
		args.path, len(world.State().Obstacles), len(warnings))
	return nil
}

// ProtoAction is the corresponding Action for 'proto'.
func ProtoAction(c *cli.Context) error {
	args, err := parseWorldArgs(c)
	if err != nil {
		return err
	}
	world, _, err := referenceframe.NewContinuous3DStaticFromFile(args.path, args.logger, args.opts...)
	if err != nil {
		return err
	}
	msg := referenceframe.WorldStateToProtobuf(world.State())

	var out []byte
	switch format := c.String(formatFlag); format {
	case "json":
		out, err = protojson.MarshalOptions{Multiline: true, Indent: "  "}.Marshal(msg)
	case "text":
		out, err = prototext.MarshalOptions{Multiline: true, Indent: "  "}.Marshal(msg)
	default:
		return errors.Errorf("unknown format %q, expected json or text", format)
	}
	if err != nil {
		return errors.Wrapf(err, "failed to marshal %s", proto.MessageName(msg))
	}
	printf(c.App.Writer, "%s", out)
	return nil
}

// WatchAction is the corresponding Action for 'watch'. Load errors are printed rather than
// returned so that the watch keeps going until the file is fixed.
func WatchAction(c *cli.Context) error {
	args, err := parseWorldArgs(c)
	if err != nil {
		return err
	}
	path, err := filepath.Abs(args.path)
	if err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "failed to create file watcher")
	}
	defer utils.UncheckedErrorFunc(watcher.Close)
	// editors often replace the file instead of writing it, so watch the directory
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return errors.Wrapf(err, "failed to watch %q", args.path)
	}

	if err := reportWorld(c, args); err != nil {
		errorf(c.App.Writer, "%v", err)
	}

	// saving a file often produces several events, validate once they settle
	debounced := debounce.New(watchDebounce)
	changed := make(chan struct{}, 1)
	notify := func() {
		select {
		case changed <- struct{}{}:
		default:
		}
	}
	for {
		select {
		case <-c.Context.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != path || event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			args.logger.Debugw("world file changed", "op", event.Op.String())
			debounced(notify)
		case <-changed:
			printf(c.App.Writer, "%s changed, validating again", args.path)
			if err := reportWorld(c, args); err != nil {
				errorf(c.App.Writer, "%v", err)
			}
			if c.Bool(watchOnceFlag) {
				return nil
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			args.logger.Errorw("file watcher failed", "error", err)
		}
	}
}

// VersionAction is the corresponding Action for 'version'.
func VersionAction(c *cli.Context) error {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return errors.New("error reading build info")
	}
	if c.Bool(debugFlag) {
		printf(c.App.Writer, "%s", info.String())
	}
	settings := make(map[string]string, len(info.Settings))
	for _, setting := range info.Settings {
		settings[setting.Key] = setting.Value
	}
	revision := "?"
	if rev, ok := settings["vcs.revision"]; ok && len(rev) >= 8 {
		revision = rev[:8]
		if settings["vcs.modified"] == "true" {
			revision += "+"
		}
	}
	apiVersion := "?"
	for _, dep := range info.Deps {
		if dep.Path == "go.viam.com/api" {
			apiVersion = dep.Version
		}
	}
	version := Version
	if version == "" {
		version = "(dev)"
	}
	printf(c.App.Writer, "Version %s Git=%s API=%s", version, revision, apiVersion)
	return nil
}
