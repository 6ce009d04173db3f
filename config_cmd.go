package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"github.com/charmbracelet/x/editor"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const defaultConfig = `# spoken locale, e.g. en or en_US
locale: "en"
# punctuation level: none, some, most, all or character
symbols: "some"
# word-wrap at width
width: 80
# show prosody and mode commands in the output
commands: false

# Speech sequence generation
speech:
  # switch language per text chunk when the document declares one
  auto_language_switching: true
  # keep dialect differences when switching, e.g. en_GB vs en_US
  auto_dialect_switching: false
  # trust the voice's reported language for the default locale
  trust_voice_language: true
  # prefix capitals with "cap" while spelling
  say_cap_for_capitals: false
  # beep before capitals while spelling
  beep_for_capitals: false
  # pitch offset applied to capitals while spelling
  cap_pitch_change: 30
  # announce character descriptions after a delay
  delayed_character_descriptions: false
  # apply NFKC normalization to spoken text
  unicode_normalization: false
  # report the normalized form during character navigation
  report_normalized_for_char_nav: false

  # line indentation: off, speech, tones or both
  report_line_indentation: "off"
  # carry indentation of blank lines over from the last non-blank line
  ignore_blank_lines_for_indentation: true

  # table headers: off, rows, columns or both
  report_table_headers: "both"
  report_table_cell_coords: true
  report_tables: true

  report_links: true
  report_landmarks: true
  report_details: true
  report_position: true
  report_clickable: true
  report_comments: true
  report_spelling_errors: true
  report_headings: true
  report_style: false
  report_font_name: false
  report_font_size: false
  report_color: false
  report_emphasis: false
  report_alignment: false
  report_line_spacing: false
  report_line_number: false
`

var configCmd = &cobra.Command{
	Use:     "config",
	Hidden:  false,
	Short:   "Edit the descant config file",
	Long:    paragraph(fmt.Sprintf("\n%s the descant config file. We’ll use EDITOR to determine which editor to use. If the config file doesn't exist, it will be created.", keyword("Edit"))),
	Example: paragraph("descant config\ndescant config --config path/to/config.yml"),
	Args:    cobra.NoArgs,
	RunE: func(*cobra.Command, []string) error {
		if err := ensureConfigFile(); err != nil {
			return err
		}

		c, err := editor.Cmd("Descant", configFile)
		if err != nil {
			return fmt.Errorf("unable to set config file: %w", err)
		}
		c.Stdin = os.Stdin
		c.Stdout = os.Stdout
		c.Stderr = os.Stderr
		if err := c.Run(); err != nil {
			return fmt.Errorf("unable to run command: %w", err)
		}

		fmt.Println("Wrote config file to:", configFile)
		return nil
	},
}

func ensureConfigFile() error {
	if configFile == "" {
		configFile = viper.GetViper().ConfigFileUsed()
		if err := os.MkdirAll(filepath.Dir(configFile), 0o755); err != nil { //nolint:gosec
			return fmt.Errorf("could not write configuration file: %w", err)
		}
	}

	if ext := path.Ext(configFile); ext != ".yaml" && ext != ".yml" {
		return fmt.Errorf("'%s' is not a supported configuration type: use '%s' or '%s'", ext, ".yaml", ".yml")
	}

	if _, err := os.Stat(configFile); errors.Is(err, fs.ErrNotExist) {
		// File doesn't exist yet, create all necessary directories and
		// write the default config file
		if err := os.MkdirAll(filepath.Dir(configFile), 0o700); err != nil {
			return fmt.Errorf("unable create directory: %w", err)
		}

		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("unable to create config file: %w", err)
		}
		defer func() { _ = f.Close() }()

		if _, err := f.WriteString(defaultConfig); err != nil {
			return fmt.Errorf("unable to write config file: %w", err)
		}
	} else if err != nil { // some other error occurred
		return fmt.Errorf("unable to stat config file: %w", err)
	}
	return nil
}
