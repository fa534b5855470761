package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/time/rate"

	"github.com/llehouerou/photogrid/internal/app"
	"github.com/llehouerou/photogrid/internal/config"
	"github.com/llehouerou/photogrid/internal/errmsg"
	"github.com/llehouerou/photogrid/internal/flickr"
	"github.com/llehouerou/photogrid/internal/logging"
	"github.com/llehouerou/photogrid/internal/search"
	"github.com/llehouerou/photogrid/internal/ui/thumbs"
)

var errNoAPIKey = errors.New("no Flickr API key: set [flickr] api_key or PHOTOGRID_FLICKR_API_KEY")

var rootCmd = &cobra.Command{
	Use:   "photogrid",
	Short: "Search Flickr and browse the results as a thumbnail grid",
	Long: `Search Flickr and browse the results as a thumbnail grid.

Each search adds a section at the top of the grid. Press / to search,
? for key bindings and q to quit.

Configuration is read from ~/.config/photogrid/config.toml and
./config.toml. PHOTOGRID_* environment variables override both.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	rootCmd.Flags().String("config", "", "config file to read instead of the default locations")
	rootCmd.Flags().Int("columns", 0, "thumbnails per row (overrides [grid] columns)")
	rootCmd.Flags().String("log-file", "", "log file (overrides [log] file)")
	rootCmd.Flags().Bool("debug", false, "log at debug level")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, _ []string) error {
	configPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(configPath)
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpConfig, err))
	}
	applyFlags(cmd.Flags(), cfg)

	logCfg := cfg.GetLogConfig()
	logger, closer, err := logging.Setup(logCfg.File, logging.ParseLevel(logCfg.Level))
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpLogging, err))
	}
	defer closer.Close()

	if !cfg.HasFlickrConfig() {
		return errors.New(errmsg.Format(errmsg.OpConfig, errNoAPIKey))
	}

	model, renderer, disk, err := buildModel(cfg, logger)
	if err != nil {
		return err
	}

	logger.Info("starting", "protocol", renderer.ProtocolName(), "cache", disk.Dir())

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return errors.New(errmsg.Format(errmsg.OpInitialize, err))
	}
	return nil
}

// applyFlags layers command-line flags over the loaded configuration.
func applyFlags(flags *pflag.FlagSet, cfg *config.Config) {
	if flags.Changed("columns") {
		cfg.Grid.Columns, _ = flags.GetInt("columns")
	}
	if flags.Changed("log-file") {
		cfg.Log.File, _ = flags.GetString("log-file")
	}
	if debug, _ := flags.GetBool("debug"); debug {
		cfg.Log.Level = "debug"
	}
}

func buildModel(cfg *config.Config, logger *slog.Logger) (app.Model, *thumbs.Renderer, *thumbs.Cache, error) {
	fc := cfg.GetFlickrConfig()
	gc := cfg.GetGridConfig()
	cc := cfg.GetCacheConfig()

	var opts []flickr.Option
	if fc.BaseURL != "" {
		opts = append(opts, flickr.WithBaseURL(fc.BaseURL))
	}
	burst := max(int(fc.RequestsPerSecond), 1)
	opts = append(opts, flickr.WithRateLimiter(rate.NewLimiter(rate.Limit(fc.RequestsPerSecond), burst)))
	client := flickr.New(fc.APIKey, opts...)

	disk, err := thumbs.NewCache(cc.Dir)
	if err != nil {
		// Thumbnails still load, they are just not kept across runs.
		logger.Warn(errmsg.Format(errmsg.OpCache, err))
	}
	store, err := thumbs.NewStore(client, disk, cc.MaxEntries)
	if err != nil {
		return app.Model{}, nil, nil, errors.New(errmsg.Format(errmsg.OpCache, err))
	}

	renderer := thumbs.NewRenderer(thumbs.Detect(cfg.ImageProtocol), store, logger)

	provider := search.New(client, store, search.Options{
		PerPage:     fc.PerPage,
		Concurrency: gc.ThumbnailConcurrency,
		Logger:      logger,
	})

	model := app.New(app.Options{
		Searcher: provider,
		Renderer: renderer,
		Cache:    store,
		Columns:  gc.Columns,
		Padding:  *gc.Padding,
		Logger:   logger,
	})
	return model, renderer, disk, nil
}
