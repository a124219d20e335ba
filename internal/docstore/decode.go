package docstore

import (
	"fmt"
	"time"

	"github.com/go-viper/mapstructure/v2"
)

// Decode copies a record into a struct using its json tags. Numeric strings,
// float64 numbers and ISO-8601 timestamps are converted to the field types.
func Decode(r Record, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		WeaklyTypedInput: true,
		Result:           out,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeHookFunc(time.RFC3339Nano),
		),
	})
	if err != nil {
		return fmt.Errorf("build decoder: %w", err)
	}
	if err := dec.Decode(map[string]any(r)); err != nil {
		return fmt.Errorf("decode %s record: %w", r.ID(), err)
	}
	return nil
}

// DecodeAll decodes every record into a new T.
func DecodeAll[T any](records []Record) ([]T, error) {
	out := make([]T, 0, len(records))
	for _, r := range records {
		var v T
		if err := Decode(r, &v); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
