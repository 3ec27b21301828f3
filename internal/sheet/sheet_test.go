package sheet_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"
	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/npc-generator/internal/engine"
	"github.com/KirkDiggler/npc-generator/internal/errors"
	"github.com/KirkDiggler/npc-generator/internal/sheet"
)

type SheetTestSuite struct {
	suite.Suite
	character *engine.Character
}

func TestSheetSuite(t *testing.T) {
	suite.Run(t, new(SheetTestSuite))
}

func (s *SheetTestSuite) SetupTest() {
	s.character = &engine.Character{Groups: []engine.GroupValues{
		{Group: "Sex", Values: []string{"Male"}},
		{Group: "Race", Values: []string{"Elf", "Human"}},
		{Group: "Fear"},
	}}
}

func (s *SheetTestSuite) TestFormatText() {
	divider := strings.Repeat("-", 120)
	want := "\n" +
		"Sex \t: Male \n" +
		"Race\t: Elf, Human \n" +
		"Fear\t:  \n" +
		divider + "\n"

	s.Equal(want, sheet.FormatText(s.character))
}

func (s *SheetTestSuite) TestFormatTextEmpty() {
	s.Equal("\n"+strings.Repeat("-", 120)+"\n", sheet.FormatText(&engine.Character{}))
	s.Equal("\n"+strings.Repeat("-", 120)+"\n", sheet.FormatText(nil))
}

func (s *SheetTestSuite) TestFormatStyledKeepsContent() {
	out := sheet.FormatStyled(s.character, sheet.DefaultStyles())

	s.Contains(out, "Race")
	s.Contains(out, "Elf, Human")
	s.Contains(out, strings.Repeat("-", 120))
}

func (s *SheetTestSuite) TestParseFormat() {
	testCases := []struct {
		name    string
		input   string
		want    sheet.Format
		wantErr bool
	}{
		{name: "default", input: "", want: sheet.FormatPlain},
		{name: "text", input: "text", want: sheet.FormatPlain},
		{name: "case insensitive", input: " YAML ", want: sheet.FormatYAML},
		{name: "json", input: "json", want: sheet.FormatJSON},
		{name: "color", input: "color", want: sheet.FormatColor},
		{name: "unknown", input: "xml", wantErr: true},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			got, err := sheet.ParseFormat(tc.input)
			if tc.wantErr {
				s.Error(err)
				s.True(errors.IsInvalidArgument(err))
				return
			}
			s.NoError(err)
			s.Equal(tc.want, got)
		})
	}
}

func (s *SheetTestSuite) TestWriteJSON() {
	var buf bytes.Buffer
	s.Require().NoError(sheet.Write(&buf, sheet.FormatJSON, s.character))

	var decoded []engine.Character
	s.Require().NoError(json.Unmarshal(buf.Bytes(), &decoded))
	s.Require().Len(decoded, 1)
	s.Equal([]string{"Elf", "Human"}, decoded[0].Groups[1].Values)
	s.Equal([]string{}, decoded[0].Groups[2].Values)
	s.Contains(buf.String(), `"values": []`)
}

func (s *SheetTestSuite) TestWriteYAMLDocuments() {
	var buf bytes.Buffer
	s.Require().NoError(sheet.Write(&buf, sheet.FormatYAML, s.character, s.character))

	dec := yaml.NewDecoder(&buf)
	count := 0
	for {
		var c engine.Character
		if err := dec.Decode(&c); err != nil {
			break
		}
		s.Equal("Sex", c.Groups[0].Group)
		count++
	}
	s.Equal(2, count)
}

func (s *SheetTestSuite) TestWriteText() {
	var buf bytes.Buffer
	s.Require().NoError(sheet.Write(&buf, sheet.FormatPlain, s.character, s.character))

	s.Equal(sheet.FormatText(s.character)+sheet.FormatText(s.character), buf.String())
}

func (s *SheetTestSuite) TestWriteUnknownFormat() {
	err := sheet.Write(&bytes.Buffer{}, sheet.Format("xml"), s.character)

	s.Error(err)
	s.True(errors.IsInvalidArgument(err))
}
