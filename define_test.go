package tvdbrenamer

import (
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tvdbrenamererrors "github.com/tvdb-renamer/tvdbrenamer/errors"
	internalenv "github.com/tvdb-renamer/tvdbrenamer/internal/env"
	internaltag "github.com/tvdb-renamer/tvdbrenamer/internal/tag"
	"go.uber.org/zap/zapcore"
)

type episodeOptions struct {
	Season   int           `flagshort:"s" flagdescr:"season number" default:"1"`
	Language string        `flag:"lang" flagshort:"la" flagmetavar:"CODE" flagenv:"true" default:"en"`
	Patterns []string      `flag:"patterns" default:"s%02de%02d,%dx%02d"`
	Episodes []int         `flag:"episodes"`
	Timeout  time.Duration `flag:"timeout" default:"5s"`
	Level    zapcore.Level `flag:"level" default:"warn"`
	Limit    uint16        `flag:"limit" flaggroup:"Limits"`
	Ignored  string        `flagignore:"true"`
	private  string
}

func (suite *tvdbrenamerSuite) TestDefine_Flags() {
	o := &episodeOptions{}
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	require.NoError(suite.T(), Define(fs, o, ""))

	season := fs.Lookup("season")
	require.NotNil(suite.T(), season, "field name lowercased is the default flag name")
	assert.Equal(suite.T(), "s", season.Shorthand)
	assert.Equal(suite.T(), "1", season.DefValue)
	assert.Equal(suite.T(), "season number", season.Usage)

	lang := fs.Lookup("lang")
	require.NotNil(suite.T(), lang)
	assert.Empty(suite.T(), lang.Shorthand, "multi-character short forms are not pflag shorthands")
	assert.Equal(suite.T(), []string{"la"}, lang.Annotations[internaltag.FlagAliasAnnotation])
	assert.Equal(suite.T(), []string{"CODE"}, lang.Annotations[internaltag.FlagMetavarAnnotation])
	assert.Equal(suite.T(), []string{"TVDB_RENAMER_LANG"}, lang.Annotations[internalenv.FlagAnnotation])
	assert.Equal(suite.T(), "en", o.Language, "defaults are stored into the fields")

	assert.Equal(suite.T(), []string{"s%02de%02d", "%dx%02d"}, o.Patterns)
	assert.Equal(suite.T(), 5*time.Second, o.Timeout)
	assert.Equal(suite.T(), zapcore.WarnLevel, o.Level)
	assert.Equal(suite.T(), "zapcore.Level", fs.Lookup("level").Value.Type())
	assert.Equal(suite.T(), []string{"Limits"}, fs.Lookup("limit").Annotations[internaltag.FlagGroupAnnotation])
	assert.NotNil(suite.T(), fs.Lookup("episodes"))

	assert.Nil(suite.T(), fs.Lookup("ignored"))
	assert.Nil(suite.T(), fs.Lookup("private"))
}

func (suite *tvdbrenamerSuite) TestDefine_FlagsBindToFields() {
	o := &episodeOptions{}
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	require.NoError(suite.T(), Define(fs, o, ""))

	require.NoError(suite.T(), fs.Parse([]string{"-s", "3", "--level", "DEBUG", "--episodes", "1,2", "--patterns", "e%02d"}))
	assert.Equal(suite.T(), 3, o.Season)
	assert.Equal(suite.T(), zapcore.DebugLevel, o.Level, "levels are case insensitive")
	assert.Equal(suite.T(), []int{1, 2}, o.Episodes)
	assert.Equal(suite.T(), []string{"e%02d"}, o.Patterns, "values given on the command line replace the default")
}

func (suite *tvdbrenamerSuite) TestNewFlagSet_Group() {
	fs, err := NewFlagSet("Episodes", &episodeOptions{})
	require.NoError(suite.T(), err)

	fs.VisitAll(func(f *pflag.Flag) {
		assert.Equal(suite.T(), []string{"Episodes"}, f.Annotations[internaltag.FlagGroupAnnotation], f.Name)
	})
}

func (suite *tvdbrenamerSuite) TestDefine_Errors() {
	cases := []struct {
		name     string
		input    any
		expected error
	}{
		{"nil", nil, tvdbrenamererrors.ErrInputValue},
		{"not a pointer", episodeOptions{}, tvdbrenamererrors.ErrInputValue},
		{"nil pointer", (*episodeOptions)(nil), tvdbrenamererrors.ErrInputValue},
		{"invalid boolean tag", &struct {
			Name string `flagenv:"maybe"`
		}{}, tvdbrenamererrors.ErrInvalidBooleanTag},
		{"invalid shorthand", &struct {
			Name string `flagshort:"n-m"`
		}{}, tvdbrenamererrors.ErrInvalidShorthand},
		{"invalid flag name", &struct {
			Name string `flag:"the name"`
		}{}, tvdbrenamererrors.ErrInvalidFlagName},
		{"unsupported type", &struct {
			Names map[string]string
		}{}, tvdbrenamererrors.ErrUnsupportedType},
		{"metavar on boolean", &struct {
			Force bool `flagmetavar:"YES"`
		}{}, tvdbrenamererrors.ErrInvalidTagUsage},
		{"invalid default", &struct {
			Season int `default:"first"`
		}{}, tvdbrenamererrors.ErrInvalidTagUsage},
		{"duplicate name", &struct {
			Name  string `flag:"name"`
			Other string `flag:"name"`
		}{}, tvdbrenamererrors.ErrDuplicateFlag},
		{"duplicate alias", &struct {
			Name  string `flagshort:"nm"`
			Other string `flagshort:"nm"`
		}{}, tvdbrenamererrors.ErrDuplicateFlag},
	}

	for _, tc := range cases {
		suite.Run(tc.name, func() {
			_, err := NewFlagSet("test", tc.input)
			require.Error(suite.T(), err)
			assert.ErrorIs(suite.T(), err, tc.expected)
		})
	}
}

func (suite *tvdbrenamerSuite) TestDefine_ValidatesBeforeDefining() {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	err := Define(fs, &struct {
		Name  string
		Names map[string]string
	}{}, "")
	require.Error(suite.T(), err)
	assert.False(suite.T(), fs.HasFlags(), "no flag gets defined when a tag is invalid")
}
