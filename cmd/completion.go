package cmd

import (
	"github.com/etnz/resale/internal/config"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion describes the command line for shell completion.
func Completion() *complete.Command {
	years := predict.Set{"all"}
	return &complete.Command{
		Flags: map[string]complete.Predictor{
			"ledger":    predict.Files("*.jsonl"),
			"store":     predict.Set{config.StoreFile, config.StorePostgres, config.StoreMySQL},
			"log-level": predict.Set{"debug", "info", "warn", "error"},
			"raw":       predict.Nothing,
		},
		Sub: map[string]*complete.Command{
			"report": {Flags: map[string]complete.Predictor{
				"y":    years,
				"json": predict.Nothing,
			}},
			"platforms": {Flags: map[string]complete.Predictor{
				"y":    predict.Something,
				"m":    predict.Set{"1", "2", "3", "4", "5", "6", "7", "8", "9", "10", "11", "12"},
				"json": predict.Nothing,
			}},
			"years": {},
			"fmt": {Flags: map[string]complete.Predictor{
				"n": predict.Nothing,
			}},
			"serve": {Flags: map[string]complete.Predictor{
				"addr":    predict.Something,
				"migrate": predict.Nothing,
			}},
			"help":     {},
			"flags":    {},
			"commands": {},
		},
	}
}
