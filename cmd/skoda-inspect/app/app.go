package app

import (
	"fmt"
	"os"

	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/carconnectivity/connector-skoda/cmd/skoda-inspect/app/options"
	"github.com/carconnectivity/connector-skoda/internal/skoda"
	"github.com/carconnectivity/connector-skoda/internal/skoda/api"
	"github.com/carconnectivity/connector-skoda/pkg/garage"
	"github.com/carconnectivity/connector-skoda/pkg/log"
)

const commandDesc = `skoda-inspect decodes saved MySkoda garage API documents (one vehicle per
file), builds the corresponding vehicle objects, promotes each to the kind
its capabilities warrant, and prints the resulting attribute tree. It is a
developer tool for inspecting what the connector would expose to the
framework; it performs no network access.`

// NewInspectCommand builds the skoda-inspect root command.
func NewInspectCommand() *cobra.Command {
	opts := options.NewInspectOptions()

	cmd := &cobra.Command{
		Use:   "skoda-inspect <dump-file> [dump-file...]",
		Short: "Inspect vehicles built from saved garage API documents",
		Long:  commandDesc,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Complete(cmd.Flags())
			if err := opts.Validate(); err != nil {
				return err
			}
			log.Init(opts.Log)
			return run(cmd, opts, args)
		},
	}

	opts.AddFlags(cmd.Flags())
	return cmd
}

func run(cmd *cobra.Command, opts *options.InspectOptions, paths []string) error {
	cfg := opts.Config()
	g := garage.New()
	populator := api.NewPopulator(log.Std(), cfg)

	// Read the dump files concurrently; building the object trees stays
	// sequential, matching how the connector applies refreshes.
	documents := make([][]byte, len(paths))
	eg, _ := errgroup.WithContext(cmd.Context())
	for i, path := range paths {
		eg.Go(func() error {
			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("failed to read dump %s: %w", path, err)
			}
			documents[i] = data
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}

	for i, raw := range documents {
		payload, err := api.Decode(raw)
		if err != nil {
			return fmt.Errorf("dump %s: %w", paths[i], err)
		}
		if payload.VIN == "" {
			return fmt.Errorf("dump %s carries no vin", paths[i])
		}

		veh := skoda.NewVehicle(payload.VIN, g, nil)
		if err := g.Add(veh); err != nil {
			return err
		}
		if err := populator.Populate(veh, raw); err != nil {
			return err
		}

		if _, err := skoda.Promote(cmd.Context(), g, veh, api.DetectKind(payload), log.Std()); err != nil {
			return err
		}
	}

	return printGarage(cmd, g)
}

func printGarage(cmd *cobra.Command, g *garage.Garage) error {
	table := uitable.New()
	table.MaxColWidth = 40
	table.AddRow("VIN", "KIND", "TITLE", "MODEL YEAR", "ENGINE", "GEARBOX", "PARTNER")

	for _, entry := range g.List() {
		veh, ok := entry.(*skoda.Vehicle)
		if !ok {
			continue
		}
		spec := veh.Specification
		engine := spec.Engine.Type.Get()
		if power := spec.Engine.PowerInKW.Get(); power != "" {
			engine = fmt.Sprintf("%s %skW", engine, power)
		}
		table.AddRow(
			veh.VIN().Get(),
			string(veh.Kind()),
			veh.Title.Get(),
			spec.ModelYear.Get(),
			engine,
			spec.Gearbox.Type.Get(),
			veh.ServicePartner.PartnerID.Get(),
		)
	}

	_, err := fmt.Fprintln(cmd.OutOrStdout(), table)
	return err
}
