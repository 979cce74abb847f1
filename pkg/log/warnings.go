package log

import (
	"io"
	"os"

	"github.com/rs/zerolog"

	ssderrors "github.com/YuminosukeSato/ssdecomp/pkg/errors"
)

// HookWarnings routes warnings raised through pkg/errors (for example the
// SMO ConvergenceWarning) to a zerolog logger writing to w. Warning types
// implementing zerolog.LogObjectMarshaler are logged with their structured
// fields. Passing nil uses stderr.
func HookWarnings(w io.Writer) {
	if w == nil {
		w = os.Stderr
	}
	logger := zerolog.New(w).With().Timestamp().Logger()

	ssderrors.SetZerologWarnFunc(func(warning error) {
		event := logger.Warn()
		if marshaler, ok := warning.(zerolog.LogObjectMarshaler); ok {
			event.EmbedObject(marshaler)
		}
		event.Msg(warning.Error())
	})
}
