package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/npc-generator/internal/engine"
	"github.com/KirkDiggler/npc-generator/internal/errors"
)

const testDatabase = `
__Sex__
Male
/end

__Race__
Elf
Human(c)
/end

__Name__
Bob
==MaleName==
Tom
/end
/end
`

const testConfig = `
__RarityClasses__
c_by_100
/end

__OptionalGroups__
None
/end

__MultipleGroups__
Race_by_100_min2max2
/end

__ConditionedGroups__
Name_by_Sex
/end
`

type CLITestSuite struct {
	suite.Suite
	dir      string
	database string
	config   string
	savePath string
}

func TestCLISuite(t *testing.T) {
	suite.Run(t, new(CLITestSuite))
}

func (s *CLITestSuite) SetupTest() {
	s.dir = s.T().TempDir()
	s.database = filepath.Join(s.dir, "database.txt")
	s.config = filepath.Join(s.dir, "config.txt")
	s.savePath = filepath.Join(s.dir, "save.txt")

	s.Require().NoError(os.WriteFile(s.database, []byte(testDatabase), 0o600))
	s.Require().NoError(os.WriteFile(s.config, []byte(testConfig), 0o600))
}

func (s *CLITestSuite) execute(args ...string) (string, error) {
	out, _, err := s.executeWithLog("error", args...)
	return out, err
}

func (s *CLITestSuite) executeWithLog(level string, args ...string) (string, string, error) {
	cmd := newRootCmd(envConfig{
		Database: s.database,
		Config:   s.config,
		SavePath: s.savePath,
		LogLevel: level,
	})

	var out, stderr bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), stderr.String(), err
}

func (s *CLITestSuite) TestNewPrintsSheet() {
	out, err := s.execute("new", "--seed", "3")
	s.Require().NoError(err)

	s.Contains(out, "Sex \t: Male \n")
	s.Contains(out, "Name\t: Tom \n")
	s.Contains(out, "Race\t: ")
	s.Contains(out, "Elf")
	s.Contains(out, "Human")
}

func (s *CLITestSuite) TestNewSameSeedSameOutput() {
	first, err := s.execute("new", "--seed", "21", "--count", "3")
	s.Require().NoError(err)
	second, err := s.execute("new", "--seed", "21", "--count", "3")
	s.Require().NoError(err)

	s.Equal(first, second)
}

func (s *CLITestSuite) TestNewForcedValues() {
	out, err := s.execute("new", "--seed", "5", "--force", "Race=Orc", "--force", "Title=Sea Captain")
	s.Require().NoError(err)

	s.Contains(out, "Race \t: Orc, ")
	s.Contains(out, "Title\t: Sea Captain \n")
}

func (s *CLITestSuite) TestNewSavesToFile() {
	out, err := s.execute("new", "--seed", "8", "--save")
	s.Require().NoError(err)

	saved, err := os.ReadFile(s.savePath)
	s.Require().NoError(err)
	s.Equal(out, string(saved))
}

func (s *CLITestSuite) TestNewSaveLogsIDAndPath() {
	_, logs, err := s.executeWithLog("info", "new", "--seed", "8", "--save")
	s.Require().NoError(err)

	s.Contains(logs, "sheet saved")
	s.NotContains(logs, `sheet_id=""`)
	s.Contains(logs, "store="+s.savePath)
}

func (s *CLITestSuite) TestNewJSON() {
	out, err := s.execute("new", "--seed", "2", "--count", "2", "--format", "json")
	s.Require().NoError(err)

	var characters []engine.Character
	s.Require().NoError(json.Unmarshal([]byte(out), &characters))
	s.Require().Len(characters, 2)

	name, ok := characters[0].Values("Name")
	s.True(ok)
	s.Equal([]string{"Tom"}, name)
}

func (s *CLITestSuite) TestNewErrors() {
	testCases := []struct {
		name  string
		args  []string
		check func(error) bool
	}{
		{
			name:  "bad count",
			args:  []string{"new", "--count", "0"},
			check: errors.IsInvalidArgument,
		},
		{
			name:  "bad forced value",
			args:  []string{"new", "--force", "Race"},
			check: errors.IsInvalidArgument,
		},
		{
			name:  "bad format",
			args:  []string{"new", "--format", "xml"},
			check: errors.IsInvalidArgument,
		},
		{
			name:  "missing config",
			args:  []string{"new", "--config", filepath.Join(s.dir, "missing.txt")},
			check: errors.IsUnavailable,
		},
		{
			name:  "bad log level",
			args:  []string{"new", "--log-level", "loud"},
			check: errors.IsInvalidArgument,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.execute(tc.args...)
			s.Require().Error(err)
			s.True(tc.check(err), "unexpected error: %v", err)
		})
	}
}

func (s *CLITestSuite) TestList() {
	testCases := []struct {
		name string
		args []string
		want string
	}{
		{name: "groups", args: []string{"list"}, want: "Sex\nRace\nName\n"},
		{name: "parameters", args: []string{"list", "Race"}, want: "Elf\nHuman(c)\n"},
		{name: "subgroups", args: []string{"list", "Name", "--sub"}, want: "MaleName\n"},
		{name: "subgroup parameters", args: []string{"list", "Name", "MaleName"}, want: "Tom\n"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			out, err := s.execute(tc.args...)
			s.Require().NoError(err)
			s.Equal(tc.want, out)
		})
	}
}

func (s *CLITestSuite) TestListUnknownGroup() {
	_, err := s.execute("list", "Missing")
	s.True(errors.IsNotFound(err))
	s.Equal(3, errors.GetCode(err).ExitCode())
}

func (s *CLITestSuite) TestSheetsRequireRedis() {
	_, err := s.execute("sheets", "list")
	s.True(errors.IsInvalidArgument(err))
}

func (s *CLITestSuite) TestParseForced() {
	forced, err := parseForced([]string{"Race=Elf", "Title = Sea Captain", "Race=Orc"})
	s.Require().NoError(err)
	s.Equal([]engine.GroupValues{
		{Group: "Race", Values: []string{"Elf", "Orc"}},
		{Group: "Title", Values: []string{"Sea Captain"}},
	}, forced)

	forced, err = parseForced(nil)
	s.Require().NoError(err)
	s.Empty(forced)

	_, err = parseForced([]string{"=Elf"})
	s.True(errors.IsInvalidArgument(err))
}

func (s *CLITestSuite) TestLoadEnv() {
	s.T().Setenv("NPCGEN_DATABASE", "/srv/npc/database")
	s.T().Setenv("NPCGEN_SEED", "77")

	cfg, err := loadEnv()
	s.Require().NoError(err)
	s.Equal("/srv/npc/database", cfg.Database)
	s.Equal(uint64(77), cfg.Seed)
	s.Equal("./config.txt", cfg.Config)
	s.Equal("info", cfg.LogLevel)

	s.T().Setenv("NPCGEN_SEED", "many")
	_, err = loadEnv()
	s.True(errors.IsInvalidArgument(err))
}
