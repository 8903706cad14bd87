package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/advert/internal/decode"
	"github.com/aidanlsb/advert/internal/record"
	"github.com/aidanlsb/advert/internal/ui"
)

type demoAdvert struct {
	name string
	args func() ([]interface{}, error)
}

func demoJSON(doc string) func() ([]interface{}, error) {
	return func() ([]interface{}, error) {
		m, err := decode.JSON(strings.NewReader(doc))
		if err != nil {
			return nil, err
		}
		return []interface{}{m}, nil
	}
}

func demoArgs(args ...interface{}) func() ([]interface{}, error) {
	return func() ([]interface{}, error) { return args, nil }
}

var demoAdverts = []demoAdvert{
	{name: "lesson", args: demoJSON(`{
		"title": "python", "price": 1000,
		"location": {
			"address": "город Москва, Лесная, 7",
			"metro_stations": ["Белорусская"]
		}
	}`)},
	{name: "lesson with plain location", args: demoJSON(`{
		"title": "python", "price": 100,
		"location": "город Москва, Лесная, 7"
	}`)},
	{name: "corgi", args: demoJSON(`{
		"title": "Вельш-корги",
		"price": 10000,
		"class": "dogs",
		"location": {
			"address": "поселение Ельдигинское, поселок санатория Тишково, 25"
		}
	}`)},
	{name: "empty", args: demoArgs()},
	{name: "iphone", args: demoArgs("iPhone X", 100)},
	{name: "mac", args: demoArgs(
		record.KV{Key: "title", Value: "Apple Mac"},
		record.KV{Key: "price", Value: 50000},
		record.KV{Key: "location", Value: record.NewMap(
			"address", "город Москва, Лесная, 20",
			"metro_stations", []interface{}{"Белорусская", "Савёловская"},
		)},
	)},
}

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Build and display a set of sample adverts",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		results := make([]map[string]interface{}, 0, len(demoAdverts))
		for _, d := range demoAdverts {
			a, err := d.args()
			if err != nil {
				return handleError(ErrInternal, err, "")
			}
			r, err := buildRecord(a...)
			if err != nil {
				return err
			}

			if isJSONOutput() {
				results = append(results, map[string]interface{}{"name": d.name, "record": recordResult(r)})
				continue
			}

			printf("%s\n", record.DisplayWith(r, displayOptions()))
			if loc, ok := r.Location(); ok {
				printf("  location: %s\n", loc)
				if addr, ok := loc.Address(); ok {
					printf("  address:  %s\n", addr)
				}
			}
			if v, ok := r.Field("class_"); ok {
				printf("  class_:   %s\n", v)
			}
			if !r.HasPrice() {
				printf("  price:    %d\n", r.Price())
			}
		}

		if isJSONOutput() {
			outputSuccess(results, &Meta{Count: len(results)})
			return nil
		}
		footer := ui.Count(len(demoAdverts), "advert", "adverts")
		if useColor() {
			footer = ui.Hint(footer)
		}
		printf("\n%s\n", footer)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(demoCmd)
}
