package coinmarketcap

import "go.opentelemetry.io/otel"

var tracer = otel.Tracer("coinwatch.lib.scrapers.coinmarketcap")
