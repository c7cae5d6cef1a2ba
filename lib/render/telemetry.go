package render

import (
	"coinwatch/lib/restyutil"

	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("coinwatch.lib.render")
var restyInstrumentOutput restyutil.InstrumentOutput

// SetRestyInstrumentOutput enables on-disk http transcripts for
// renderers constructed after the call.
func SetRestyInstrumentOutput(out restyutil.InstrumentOutput) {
	restyInstrumentOutput = out
}
