package worldfile

import "go.uber.org/zap"

func observedKind(kind WarningKind) zap.Field {
	return zap.String("kind", string(kind))
}
