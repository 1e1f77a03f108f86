package tvdbrenamer

import (
	"errors"
	"syscall"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tvdb-renamer/tvdbrenamer/config"
	tvdbrenamererrors "github.com/tvdb-renamer/tvdbrenamer/errors"
	"github.com/tvdb-renamer/tvdbrenamer/resources"
)

func (suite *tvdbrenamerSuite) TestCopyDefaultConfig_CreatesDirectoryFromEmbedded() {
	dst, err := CopyDefaultConfig("", suite.options()...)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), userFile(config.DefaultBasename), dst)

	isDir, err := afero.IsDir(suite.fs, testUserDir)
	require.NoError(suite.T(), err)
	assert.True(suite.T(), isDir)

	expected, err := resources.Read(config.DefaultBasename)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), string(expected), suite.read(dst), "should copy the embedded default when no installed one exists")
}

func (suite *tvdbrenamerSuite) TestCopyDefaultConfig_PrefersInstalledResource() {
	suite.write(packageFile(config.DefaultBasename), "[tvdb_renamer]\ndry-run = true\n")

	dst, err := CopyDefaultConfig(config.DefaultBasename, suite.options()...)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "[tvdb_renamer]\ndry-run = true\n", suite.read(dst))
}

func (suite *tvdbrenamerSuite) TestCopyDefaultConfig_Idempotent() {
	suite.write(packageFile("show.cfg"), "packaged")

	dst, err := CopyDefaultConfig("show.cfg", suite.options()...)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "packaged", suite.read(dst))

	suite.write(dst, "edited by the user")
	for range 2 {
		again, err := CopyDefaultConfig("show.cfg", suite.options()...)
		require.NoError(suite.T(), err)
		assert.Equal(suite.T(), dst, again)
		assert.Equal(suite.T(), "edited by the user", suite.read(dst), "existing files are kept without clobber")
	}
}

func (suite *tvdbrenamerSuite) TestCopyDefaultConfig_Clobber() {
	suite.write(packageFile("show.cfg"), "packaged")
	suite.write(userFile("show.cfg"), "edited by the user")

	dst, err := CopyDefaultConfig("show.cfg", suite.options(WithClobber(true))...)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "packaged", suite.read(dst), "clobber should restore the packaged content")
}

func (suite *tvdbrenamerSuite) TestCopyDefaultConfig_Destination() {
	suite.write(packageFile("show.cfg"), "packaged")

	dst, err := CopyDefaultConfig("show.cfg", suite.options(WithDestination("/elsewhere/conf"))...)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "/elsewhere/conf/show.cfg", dst)
	assert.Equal(suite.T(), "packaged", suite.read(dst))
}

func (suite *tvdbrenamerSuite) TestCopyDefaultConfig_MissingResource() {
	_, err := CopyDefaultConfig("test.cfg", suite.options()...)
	require.Error(suite.T(), err)
	assert.ErrorIs(suite.T(), err, tvdbrenamererrors.ErrMissingResource)

	var missingErr *tvdbrenamererrors.MissingResourceError
	require.True(suite.T(), errors.As(err, &missingErr))
	assert.Equal(suite.T(), "test.cfg", missingErr.Basename)
	assert.Equal(suite.T(), packageFile("test.cfg"), missingErr.Path)
}

func (suite *tvdbrenamerSuite) TestCopyDefaultConfig_ExistingFileWithoutResource() {
	suite.write(userFile("test.cfg"), "mine")

	dst, err := CopyDefaultConfig("test.cfg", suite.options()...)
	require.NoError(suite.T(), err, "nothing to copy when the file is already there")
	assert.Equal(suite.T(), "mine", suite.read(dst))
}

func (suite *tvdbrenamerSuite) TestCopyDefaultConfig_ReadOnlyDestination() {
	suite.fs = afero.NewReadOnlyFs(afero.NewMemMapFs())

	_, err := CopyDefaultConfig("", suite.options()...)
	require.Error(suite.T(), err)
	assert.ErrorIs(suite.T(), err, syscall.EPERM)
	assert.NotErrorIs(suite.T(), err, tvdbrenamererrors.ErrMissingResource)
}
