package tvdbrenamer

import (
	"github.com/stretchr/testify/assert"
	"github.com/tvdb-renamer/tvdbrenamer/config"
)

func (suite *tvdbrenamerSuite) TestConfigFile_NoneExists() {
	assert.Equal(suite.T(), "", ConfigFile("missing.cfg", suite.options()...))
}

func (suite *tvdbrenamerSuite) TestConfigFile_PriorityOrder() {
	basename := "show.cfg"

	suite.write(packageFile(basename), "dry-run = true")
	assert.Equal(suite.T(), packageFile(basename), ConfigFile(basename, suite.options()...), "packaged resource is the last resort")

	suite.write(userFile(basename), "dry-run = true")
	assert.Equal(suite.T(), userFile(basename), ConfigFile(basename, suite.options()...), "user directory should win over the packaged resource")

	suite.write(workFile(basename), "dry-run = true")
	assert.Equal(suite.T(), workFile(basename), ConfigFile(basename, suite.options()...), "current directory should win over everything")
}

func (suite *tvdbrenamerSuite) TestConfigFile_SkipsDirectories() {
	basename := "show.cfg"
	suite.write(workFile(basename)+"/nested", "")
	suite.write(userFile(basename), "")

	assert.Equal(suite.T(), userFile(basename), ConfigFile(basename, suite.options()...), "a directory is not a config file")
}

func (suite *tvdbrenamerSuite) TestConfigFile_DefaultBasename() {
	suite.write(userFile(config.DefaultBasename), "")

	assert.Equal(suite.T(), userFile(config.DefaultBasename), ConfigFile("", suite.options()...))
}

func (suite *tvdbrenamerSuite) TestConfigFile_PackageRootFromEnvironment() {
	suite.T().Setenv(config.PackageRootEnvVar, "/opt/share")
	suite.cfgOpts.PackageRoot = ""
	suite.write("/opt/share/tvdb_renamer/show.cfg", "")

	assert.Equal(suite.T(), "/opt/share/tvdb_renamer/show.cfg", ConfigFile("show.cfg", suite.options()...))
}

func (suite *tvdbrenamerSuite) TestConfigFile_CustomSearchPaths() {
	basename := "show.cfg"
	suite.write(workFile(basename), "")
	suite.write(userFile(basename), "")
	suite.cfgOpts.SearchPaths = []config.SearchPathType{config.SearchPathUserDir, config.SearchPathWorkingDir}

	assert.Equal(suite.T(), userFile(basename), ConfigFile(basename, suite.options()...))
}

func (suite *tvdbrenamerSuite) TestConfigFile_HasNoSideEffects() {
	assert.Equal(suite.T(), "", ConfigFile("missing.cfg", suite.options()...))

	exists, err := suite.fs.Stat(testUserDir)
	assert.Nil(suite.T(), exists)
	assert.Error(suite.T(), err, "the locator must not create directories")
}

func (suite *tvdbrenamerSuite) TestConfigFile_CurrentDirectoryKeepsDotPrefix() {
	suite.write("show.cfg", "dry-run = true")

	cfgOpts := suite.cfgOpts
	cfgOpts.WorkDir = ""
	path := ConfigFile("show.cfg", WithFs(suite.fs), WithConfigOptions(cfgOpts))
	assert.Equal(suite.T(), "./show.cfg", path)
}
