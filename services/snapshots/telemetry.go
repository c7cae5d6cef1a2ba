package snapshots

import "go.opentelemetry.io/otel"

var tracer = otel.Tracer("coinwatch.services.snapshots")
