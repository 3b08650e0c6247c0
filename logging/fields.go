package logging

import (
	"fmt"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Keys with a fixed meaning in world description logs.
const (
	// KindKey names the kind of a finding, such as repeated_obstacle.
	KindKey = "kind"
	// LineKey is the 1-based line of the world description an entry is about.
	LineKey = "line"
	// PathKey is the world description file an entry is about.
	PathKey = "path"
)

var errUnpairedKey = errors.New("unpaired log key")

// toFields turns alternating keys and values into zap fields. Kinds are always logged as strings
// and lines as integers, whatever named type the caller passes.
func toFields(keysAndValues []interface{}) []zapcore.Field {
	fields := make([]zapcore.Field, 0, (len(keysAndValues)+1)/2)
	for i := 0; i < len(keysAndValues); i += 2 {
		key := keyString(keysAndValues[i])
		if i+1 >= len(keysAndValues) {
			fields = append(fields, zap.NamedError(key, errUnpairedKey))
			continue
		}
		fields = append(fields, toField(key, keysAndValues[i+1]))
	}
	return fields
}

func keyString(key interface{}) string {
	if stringer, ok := key.(fmt.Stringer); ok {
		return stringer.String()
	}
	return fmt.Sprintf("%v", key)
}

func toField(key string, value interface{}) zapcore.Field {
	switch key {
	case KindKey, PathKey:
		return zap.String(key, fmt.Sprint(value))
	case LineKey:
		if line, ok := value.(int); ok {
			return zap.Int(key, line)
		}
	}
	if err, ok := value.(error); ok {
		return zap.NamedError(key, err)
	}
	return zap.Any(key, value)
}
