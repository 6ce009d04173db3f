// Package main provides the entry point for the descant CLI application.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/go-viper/mapstructure/v2"
	gap "github.com/muesli/go-app-paths"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/voxhollow/descant/speech"
	"github.com/voxhollow/descant/speech/characters"
)

var (
	// Version as provided by goreleaser.
	Version = ""
	// CommitSHA as provided by goreleaser.
	CommitSHA = ""

	configFile   string
	spell        bool
	describe     bool
	showCommands bool
	locale       string
	symbolLevel  string
	width        uint

	rootCmd = &cobra.Command{
		Use:   "descant [SOURCE]",
		Short: "Turn documents into speech sequences on the CLI",
		Long: paragraph(
			fmt.Sprintf("\nRender text as the %s a screen reader would queue for it.", keyword("speech sequences")),
		),
		SilenceErrors:    false,
		SilenceUsage:     true,
		TraverseChildren: true,
		ValidArgsFunction: func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
			return nil, cobra.ShellCompDirectiveDefault
		},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return validateOptions(cmd)
		},
		RunE: execute,
	}
)

var (
	keywordStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#04B575", Dark: "#ECFD65"})
	paragraphStyle = lipgloss.NewStyle().
			Width(78).
			Padding(0, 0, 0, 2)
)

func keyword(s string) string   { return keywordStyle.Render(s) }
func paragraph(s string) string { return paragraphStyle.Render(s) }

// source provides a readable text source.
type source struct {
	reader io.ReadCloser
	URL    string
}

// sourceFromArg parses an argument and creates a readable source for it.
func sourceFromArg(arg string) (*source, error) {
	// from stdin
	if arg == "-" {
		return &source{reader: os.Stdin}, nil
	}

	r, err := os.Open(arg)
	if err != nil {
		return nil, fmt.Errorf("unable to open file: %w", err)
	}
	u, err := filepath.Abs(arg)
	if err != nil {
		return nil, fmt.Errorf("unable to get absolute path: %w", err)
	}
	return &source{r, u}, nil
}

// parseSymbolLevel maps a level name or numeric value to a SymbolLevel.
func parseSymbolLevel(s string) (characters.SymbolLevel, error) {
	switch strings.ToLower(s) {
	case "none":
		return characters.LevelNone, nil
	case "some", "":
		return characters.LevelSome, nil
	case "most":
		return characters.LevelMost, nil
	case "all":
		return characters.LevelAll, nil
	case "character":
		return characters.LevelChar, nil
	}
	if n, err := strconv.Atoi(s); err == nil {
		return characters.SymbolLevel(n), nil
	}
	return 0, fmt.Errorf("unknown symbol level: %s", s)
}

func validateOptions(cmd *cobra.Command) error {
	// grab config values from Viper
	width = viper.GetUint("width")
	spell = viper.GetBool("spell")
	describe = viper.GetBool("describe")
	showCommands = viper.GetBool("commands")
	locale = viper.GetString("locale")
	symbolLevel = viper.GetString("symbols")

	if _, err := parseSymbolLevel(symbolLevel); err != nil {
		return err
	}
	if describe && !spell {
		return errors.New("cannot use character descriptions outside spelling mode")
	}

	// Detect terminal width
	if !cmd.Flags().Changed("width") { //nolint:nestif
		if term.IsTerminal(int(os.Stdout.Fd())) && width == 0 {
			w, _, err := term.GetSize(int(os.Stdout.Fd()))
			if err == nil {
				width = uint(w) //nolint:gosec
			}

			if width > 120 {
				width = 120
			}
		}
		if width == 0 {
			width = 80
		}
	}
	return nil
}

// engineConfig builds the speech configuration: struct defaults, then the
// environment, then the speech section of the config file, then flags.
func engineConfig() (speech.Config, error) {
	cfg, err := speech.ConfigFromEnv()
	if err != nil {
		return cfg, err
	}

	if viper.IsSet("speech") {
		err := viper.UnmarshalKey("speech", &cfg, func(dc *mapstructure.DecoderConfig) {
			dc.TagName = "yaml"
			dc.DecodeHook = mapstructure.TextUnmarshallerHookFunc()
		})
		if err != nil {
			return cfg, fmt.Errorf("unable to parse speech config: %w", err)
		}
	}

	level, err := parseSymbolLevel(symbolLevel)
	if err != nil {
		return cfg, err
	}
	cfg.SymbolLevel = level

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func stdinIsPipe() (bool, error) {
	stat, err := os.Stdin.Stat()
	if err != nil {
		return false, fmt.Errorf("unable to open file: %w", err)
	}
	if stat.Mode()&os.ModeCharDevice == 0 || stat.Size() > 0 {
		return true, nil
	}
	return false, nil
}

func execute(cmd *cobra.Command, args []string) error {
	cfg, err := engineConfig()
	if err != nil {
		return err
	}
	engine := speech.New(cfg, newRenderer(os.Stdout, int(width), showCommands), //nolint:gosec
		speech.WithLocale(locale),
	)

	// if stdin is a pipe then use stdin for input. note that you can also
	// explicitly use a - to read from stdin.
	if yes, err := stdinIsPipe(); err != nil {
		return err
	} else if yes {
		src := &source{reader: os.Stdin}
		defer src.reader.Close() //nolint:errcheck
		return executeCLI(engine, src)
	}

	if len(args) == 0 {
		return cmd.Help()
	}

	for _, arg := range args {
		if err := executeArg(engine, arg); err != nil {
			return err
		}
	}
	return nil
}

func executeArg(engine *speech.Engine, arg string) error {
	src, err := sourceFromArg(arg)
	if err != nil {
		return err
	}
	defer src.reader.Close() //nolint:errcheck
	return executeCLI(engine, src)
}

func executeCLI(engine *speech.Engine, src *source) error {
	scanner := bufio.NewScanner(src.reader)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		var err error
		if spell {
			err = engine.SpeakSpelling(line, "", describe, speech.PriorityNormal)
		} else {
			err = engine.Speak(speech.Sequence{speech.Text(line)}, speech.PriorityNormal)
		}
		if err != nil {
			return fmt.Errorf("unable to speak line: %w", err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("unable to read from reader: %w", err)
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	tryLoadConfigFromDefaultPlaces()
	if len(CommitSHA) >= 7 {
		vt := rootCmd.VersionTemplate()
		rootCmd.SetVersionTemplate(vt[:len(vt)-1] + " (" + CommitSHA[0:7] + ")\n")
	}
	if Version == "" {
		Version = "unknown (built from source)"
	}
	rootCmd.Version = Version
	rootCmd.InitDefaultCompletionCmd()

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", fmt.Sprintf("config file (default %s)", viper.GetViper().ConfigFileUsed()))
	rootCmd.Flags().BoolVarP(&spell, "spell", "s", false, "spell the input character by character")
	rootCmd.Flags().BoolVarP(&describe, "describe", "d", false, "use character descriptions while spelling")
	rootCmd.Flags().BoolVarP(&showCommands, "commands", "c", false, "show prosody and mode commands in the output")
	rootCmd.Flags().StringVarP(&locale, "locale", "l", "en", "spoken locale, e.g. en_US")
	rootCmd.Flags().StringVarP(&symbolLevel, "symbols", "y", "some", "punctuation level: none, some, most, all or character")
	rootCmd.Flags().UintVarP(&width, "width", "w", 0, "word-wrap at width (set to 0 to disable)")

	// Config bindings
	_ = viper.BindPFlag("spell", rootCmd.Flags().Lookup("spell"))
	_ = viper.BindPFlag("describe", rootCmd.Flags().Lookup("describe"))
	_ = viper.BindPFlag("commands", rootCmd.Flags().Lookup("commands"))
	_ = viper.BindPFlag("locale", rootCmd.Flags().Lookup("locale"))
	_ = viper.BindPFlag("symbols", rootCmd.Flags().Lookup("symbols"))
	_ = viper.BindPFlag("width", rootCmd.Flags().Lookup("width"))

	viper.SetDefault("locale", "en")
	viper.SetDefault("symbols", "some")
	viper.SetDefault("width", 0)

	rootCmd.AddCommand(configCmd)
}

func tryLoadConfigFromDefaultPlaces() {
	scope := gap.NewScope(gap.User, "descant")
	dirs, err := scope.ConfigDirs()
	if err != nil {
		fmt.Println("Could not load find configuration directory.")
		os.Exit(1)
	}

	if c := os.Getenv("XDG_CONFIG_HOME"); c != "" {
		dirs = append([]string{filepath.Join(c, "descant")}, dirs...)
	}

	if c := os.Getenv("DESCANT_CONFIG_HOME"); c != "" {
		dirs = append([]string{c}, dirs...)
	}

	for _, v := range dirs {
		viper.AddConfigPath(v)
	}

	viper.SetConfigName("descant")
	viper.SetConfigType("yaml")
	viper.SetEnvPrefix("descant")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Warn("Could not parse configuration file", "err", err)
		}
	}

	if used := viper.ConfigFileUsed(); used != "" {
		log.Debug("Using configuration file", "path", viper.ConfigFileUsed())
		return
	}

	if viper.ConfigFileUsed() == "" {
		configFile = filepath.Join(dirs[0], "descant.yml")
	}
	if err := ensureConfigFile(); err != nil {
		log.Error("Could not create default configuration", "error", err)
	}
}
