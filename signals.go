package bacon

import (
	"context"
	"time"

	"github.com/zoobzio/capitan"
)

// Signals for carrier events.
var (
	SignalDisguiseStart    = capitan.NewSignal("bacon.disguise.start", "Disguise operation beginning")
	SignalDisguiseComplete = capitan.NewSignal("bacon.disguise.complete", "Disguise operation finished")
	SignalRevealStart      = capitan.NewSignal("bacon.reveal.start", "Reveal operation beginning")
	SignalRevealComplete   = capitan.NewSignal("bacon.reveal.complete", "Reveal operation finished")
)

// Keys for typed event data.
var (
	KeyCarrier    = capitan.NewStringKey("carrier")
	KeySecretSize = capitan.NewIntKey("secret_size")
	KeyPublicSize = capitan.NewIntKey("public_size")
	KeyInputSize  = capitan.NewIntKey("input_size")
	KeyOutputSize = capitan.NewIntKey("output_size")
	KeyDuration   = capitan.NewDurationKey("duration")
	KeyError      = capitan.NewErrorKey("error")
)

// The emit helpers are exported because carrier implementations live in
// their own subpackages.

// EmitDisguiseStart emits an event when a disguise operation begins.
func EmitDisguiseStart(ctx context.Context, carrier string, secretSize, publicSize int) {
	capitan.Emit(ctx, SignalDisguiseStart,
		KeyCarrier.Field(carrier),
		KeySecretSize.Field(secretSize),
		KeyPublicSize.Field(publicSize),
	)
}

// EmitDisguiseComplete emits an event when a disguise operation finishes.
func EmitDisguiseComplete(ctx context.Context, carrier string, outputSize int, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyCarrier.Field(carrier),
		KeyOutputSize.Field(outputSize),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalDisguiseComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalDisguiseComplete, fields...)
	}
}

// EmitRevealStart emits an event when a reveal operation begins.
func EmitRevealStart(ctx context.Context, carrier string, inputSize int) {
	capitan.Emit(ctx, SignalRevealStart,
		KeyCarrier.Field(carrier),
		KeyInputSize.Field(inputSize),
	)
}

// EmitRevealComplete emits an event when a reveal operation finishes.
func EmitRevealComplete(ctx context.Context, carrier string, outputSize int, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyCarrier.Field(carrier),
		KeyOutputSize.Field(outputSize),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalRevealComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalRevealComplete, fields...)
	}
}
