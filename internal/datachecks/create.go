package datachecks

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/go-viper/mapstructure/v2"
)

// ErrUnknownDataCheck is returned by Create for an unregistered check name.
var ErrUnknownDataCheck = errors.New("unknown data check")

// HighlyNullArgs holds the parameters of a HighlyNullDataCheck.
type HighlyNullArgs struct {
	PctNullThreshold float64 `mapstructure:"pct_null_threshold"`
}

// IDColumnsArgs holds the parameters of an IDColumnsDataCheck.
type IDColumnsArgs struct {
	IDThreshold float64 `mapstructure:"id_threshold"`
}

// LabelLeakageArgs holds the parameters of a LabelLeakageDataCheck.
type LabelLeakageArgs struct {
	PctCorrThreshold float64 `mapstructure:"pct_corr_threshold"`
}

type factory func(params map[string]any) (DataCheck, error)

var factories = map[string]factory{
	"HighlyNullDataCheck": func(params map[string]any) (DataCheck, error) {
		args := HighlyNullArgs{PctNullThreshold: DefaultPctNullThreshold}
		if err := decodeParams(params, &args); err != nil {
			return nil, err
		}
		return NewHighlyNullDataCheck(args.PctNullThreshold)
	},
	"IDColumnsDataCheck": func(params map[string]any) (DataCheck, error) {
		args := IDColumnsArgs{IDThreshold: DefaultIDThreshold}
		if err := decodeParams(params, &args); err != nil {
			return nil, err
		}
		return NewIDColumnsDataCheck(args.IDThreshold)
	},
	"LabelLeakageDataCheck": func(params map[string]any) (DataCheck, error) {
		args := LabelLeakageArgs{PctCorrThreshold: DefaultPctCorrThreshold}
		if err := decodeParams(params, &args); err != nil {
			return nil, err
		}
		return NewLabelLeakageDataCheck(args.PctCorrThreshold)
	},
	"InvalidTargetDataCheck": func(params map[string]any) (DataCheck, error) {
		if err := decodeParams(params, &struct{}{}); err != nil {
			return nil, err
		}
		return &InvalidTargetDataCheck{}, nil
	},
}

// aliases map short snake_case names onto registered check names.
var aliases = map[string]string{
	"highly_null":    "HighlyNullDataCheck",
	"id_columns":     "IDColumnsDataCheck",
	"label_leakage":  "LabelLeakageDataCheck",
	"invalid_target": "InvalidTargetDataCheck",
}

// Create builds a registered data check by name from decoded parameters.
// Unset parameters keep their defaults; unknown parameters are an error.
func Create(name string, params map[string]any) (DataCheck, error) {
	key := strings.TrimSpace(name)
	if alias, ok := aliases[strings.ToLower(key)]; ok {
		key = alias
	}
	f, ok := factories[key]
	if !ok {
		return nil, fmt.Errorf("%w %q: must be one of %s", ErrUnknownDataCheck, name, strings.Join(Registered(), ", "))
	}
	c, err := f(params)
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", key, err)
	}
	return c, nil
}

// Registered returns the sorted names Create accepts.
func Registered() []string {
	names := make([]string, 0, len(factories))
	for n := range factories {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func decodeParams(params map[string]any, out any) error {
	if len(params) == 0 {
		return nil
	}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      out,
		ErrorUnused: true,
	})
	if err != nil {
		return err
	}
	return dec.Decode(params)
}
