package humanize

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v2"
)

type goldenCases struct {
	TimeAgo []struct {
		Name      string `yaml:"name"`
		Timestamp int64  `yaml:"timestamp"`
		Reference int64  `yaml:"reference"`
		Output    string `yaml:"output"`
	} `yaml:"timeago"`

	Duration []struct {
		Name     string `yaml:"name"`
		Seconds  int64  `yaml:"seconds"`
		Compact  bool   `yaml:"compact"`
		MaxUnits int    `yaml:"max_units"`
		Output   string `yaml:"output"`
		Error    bool   `yaml:"error"`
	} `yaml:"duration"`

	ParseDuration []struct {
		Name   string `yaml:"name"`
		Input  string `yaml:"input"`
		Output int64  `yaml:"output"`
		Error  bool   `yaml:"error"`
	} `yaml:"parse_duration"`

	HumanDate []struct {
		Name      string `yaml:"name"`
		Timestamp int64  `yaml:"timestamp"`
		Reference int64  `yaml:"reference"`
		Output    string `yaml:"output"`
	} `yaml:"human_date"`

	DateRange []struct {
		Name   string `yaml:"name"`
		Start  int64  `yaml:"start"`
		End    int64  `yaml:"end"`
		Output string `yaml:"output"`
	} `yaml:"date_range"`
}

func loadGolden(t *testing.T) goldenCases {
	t.Helper()
	data, err := os.ReadFile("testdata/cases.yaml")
	require.NoError(t, err)

	var c goldenCases
	require.NoError(t, yaml.Unmarshal(data, &c))
	require.NotEmpty(t, c.TimeAgo)
	return c
}

func TestGolden(t *testing.T) {
	c := loadGolden(t)

	t.Run("timeago", func(t *testing.T) {
		for _, tt := range c.TimeAgo {
			t.Run(tt.Name, func(t *testing.T) {
				assert.Equal(t, tt.Output, TimeAgo(Unix(tt.Timestamp), Unix(tt.Reference)))
			})
		}
	})

	t.Run("duration", func(t *testing.T) {
		for _, tt := range c.Duration {
			t.Run(tt.Name, func(t *testing.T) {
				got, err := Duration(tt.Seconds, DurationOptions{Compact: tt.Compact, MaxUnits: tt.MaxUnits})
				if tt.Error {
					var perr *ParseError
					assert.ErrorAs(t, err, &perr)
					assert.Empty(t, got)
					return
				}
				require.NoError(t, err)
				assert.Equal(t, tt.Output, got)
			})
		}
	})

	t.Run("parse_duration", func(t *testing.T) {
		for _, tt := range c.ParseDuration {
			t.Run(tt.Name, func(t *testing.T) {
				got, err := ParseDuration(tt.Input)
				if tt.Error {
					var perr *ParseError
					assert.ErrorAs(t, err, &perr)
					return
				}
				require.NoError(t, err)
				assert.Equal(t, tt.Output, got)
			})
		}
	})

	t.Run("human_date", func(t *testing.T) {
		for _, tt := range c.HumanDate {
			t.Run(tt.Name, func(t *testing.T) {
				assert.Equal(t, tt.Output, HumanDate(Unix(tt.Timestamp), Unix(tt.Reference)))
			})
		}
	})

	t.Run("date_range", func(t *testing.T) {
		for _, tt := range c.DateRange {
			t.Run(tt.Name, func(t *testing.T) {
				assert.Equal(t, tt.Output, DateRange(Unix(tt.Start), Unix(tt.End)))
			})
		}
	})
}
