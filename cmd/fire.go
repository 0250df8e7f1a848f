package cmd

import (
	"fmt"

	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"github.com/yaoapp/callbacks/config"
	"github.com/yaoapp/callbacks/demo"
	"github.com/yaoapp/callbacks/event"
)

func newFireCommand(envfile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "fire [value] [instance-value]",
		Short: "Fire a value at the demo listeners and print what each returned",
		Long: "Fire registers a free function, a static-style function, a bound " +
			"instance method, a closure and a function object, then fires value at " +
			"them in that order. Defaults come from CALLBACKS_VALUE and " +
			"CALLBACKS_INSTANCE_VALUE.",
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*envfile)
			if err != nil {
				return err
			}
			if err := config.Apply(cfg); err != nil {
				return err
			}

			value := cfg.Value
			if len(args) > 0 {
				value = args[0]
			}

			instanceValue := cfg.InstanceValue
			if len(args) > 1 {
				instanceValue, err = cast.ToIntE(args[1])
				if err != nil {
					return fmt.Errorf("instance-value %q: %w", args[1], err)
				}
			}

			w := cmd.OutOrStdout()
			demo.SetOutput(w)
			defer demo.SetOutput(nil)

			d := demo.New(instanceValue, event.Output(w), event.Name("demo"))
			log.Info("firing %q at %d listeners", value, d.Len())

			results, err := d.TryFire(value)
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "Results: %v\n", results)
			return nil
		},
	}
}
