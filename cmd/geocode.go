package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"firedispatch/config"
	"firedispatch/infra/logger"
	"firedispatch/infra/maps"
)

var geocodeCmd = &cobra.Command{
	Use:   "geocode [place]",
	Short: "Resolve a place name to coordinates",
	Args:  cobra.ExactArgs(1),
	RunE:  geocodePlace,
}

func init() {
	rootCmd.AddCommand(geocodeCmd)
}

func geocodePlace(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if cfg.Providers.MapsAPIKey == "" {
		return fmt.Errorf("maps API key not configured")
	}
	client, err := maps.New(cfg.Providers.MapsAPIKey, logger.New("geocode-command"))
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
	defer cancel()
	pt, err := client.Geocode(ctx, args[0])
	if err != nil {
		return err
	}
	fmt.Printf("%s: lon=%.6f lat=%.6f\n", args[0], pt.Lon, pt.Lat)
	return nil
}
