package registry

import (
	"fmt"
	"strings"

	"github.com/drake200120xx/constorm/pkg/random"
	"github.com/mitchellh/mapstructure"
)

type diceArgs struct {
	Sides int `mapstructure:"sides"`
	Count int `mapstructure:"count"`
}

type decimalArgs struct {
	Min float64 `mapstructure:"min"`
	Max float64 `mapstructure:"max"`
}

type echoArgs struct {
	Text  string `mapstructure:"text"`
	Upper bool   `mapstructure:"upper"`
}

// RegisterBuiltins adds the stock functions:
//
//	dice     {sides, count}  sum of count rolls of a sides-sided die
//	decimal  {min, max}      random decimal in [min, max]
//	echo     {text, upper}   returns text, optionally upper-cased
func RegisterBuiltins(r *Registry, gen *random.Generator) {
	if gen == nil {
		gen = random.Default()
	}

	r.Register("dice", func(args map[string]any) (any, error) {
		a := diceArgs{Sides: 6, Count: 1}
		if err := decode(args, &a); err != nil {
			return nil, err
		}
		if a.Sides < 1 || a.Count < 1 {
			return nil, fmt.Errorf("dice: sides and count must be positive, got %d and %d", a.Sides, a.Count)
		}
		var total int64
		for range a.Count {
			total += gen.Int(1, int64(a.Sides))
		}
		return total, nil
	})

	r.Register("decimal", func(args map[string]any) (any, error) {
		a := decimalArgs{Max: 1}
		if err := decode(args, &a); err != nil {
			return nil, err
		}
		return gen.Decimal(a.Min, a.Max), nil
	})

	r.Register("echo", func(args map[string]any) (any, error) {
		var a echoArgs
		if err := decode(args, &a); err != nil {
			return nil, err
		}
		if a.Upper {
			return strings.ToUpper(a.Text), nil
		}
		return a.Text, nil
	})
}

func decode(args map[string]any, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(args); err != nil {
		return fmt.Errorf("decode arguments: %w", err)
	}
	return nil
}
