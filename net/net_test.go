package net_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/dalzilio/safenet/net"
)

type BuilderSuite struct {
	suite.Suite
}

func TestBuilderSuite(t *testing.T) {
	suite.Run(t, new(BuilderSuite))
}

// s1Net builds the S1 producer/consumer scenario: p0,p1; M0=(1,0); t0
// consumes p0 and produces p1; t1 consumes p1 and produces p0.
func s1Net(s *BuilderSuite) *net.Net {
	n, warnings, err := net.Build().
		Place("p0", 1).
		Place("p1", 0).
		Transition("t0").
		Transition("t1").
		Arc("p0", "t0").
		Arc("t0", "p1").
		Arc("p1", "t1").
		Arc("t1", "p0").
		Done(true)
	require.NoError(s.T(), err)
	require.Empty(s.T(), warnings)
	return n
}

func (s *BuilderSuite) TestS1Shape() {
	n := s1Net(s)
	require := require.New(s.T())
	require.Equal(2, n.NumPlaces())
	require.Equal(2, n.NumTrans())
	require.Equal([]int{1, 0}, n.M0)
	require.Equal(1, n.I[0][0], "t0 consumes p0")
	require.Equal(1, n.O[1][0], "t0 produces p1")
	require.Equal(1, n.I[1][1], "t1 consumes p1")
	require.Equal(1, n.O[0][1], "t1 produces p0")
}

func (s *BuilderSuite) TestDuplicatePlaceID() {
	_, _, err := net.Build().Place("p0", 0).Place("p0", 1).Done(true)
	s.ErrorIs(err, net.ErrValidation)
}

func (s *BuilderSuite) TestArcToUnknownTransition() {
	_, _, err := net.Build().Place("p0", 0).Arc("p0", "missing").Done(true)
	s.ErrorIs(err, net.ErrMalformedPNML)
}

func (s *BuilderSuite) TestIsolatedPlaceWarns() {
	// S3's isolated place p2.
	n, warnings, err := net.Build().
		Place("p0", 1).
		Place("p1", 0).
		Place("p2", 0).
		Transition("t0").
		Transition("t1").
		Arc("p0", "t0").
		Arc("t0", "p1").
		Arc("p1", "t1").
		Arc("t1", "p0").
		Done(true)
	require := require.New(s.T())
	require.NoError(err)
	require.NotNil(n)
	found := false
	for _, w := range warnings {
		if w == `isolated place "p2" (no incident arcs)` {
			found = true
		}
	}
	require.True(found, "expected an isolated-place warning, got %v", warnings)
}

func (s *BuilderSuite) TestNegativeMarkingRejectedStrict() {
	n, _, err := net.Build().Place("p0", 0).Transition("t0").Done(true)
	require.NoError(s.T(), err)
	n.M0[0] = -1
	_, err = n.Validate(true)
	s.ErrorIs(err, net.ErrValidation)
}

func (s *BuilderSuite) TestNonSafeMarkingRejectedStrict() {
	_, _, err := net.Build().Place("p0", 2).Transition("t0").Done(true)
	s.ErrorIs(err, net.ErrValidation)
}

func (s *BuilderSuite) TestLenientDowngradesToWarning() {
	n, warnings, err := net.Build().Place("p0", 2).Done(false)
	require := require.New(s.T())
	require.NoError(err)
	require.NotNil(n)
	require.NotEmpty(warnings)
}

// TestS6ParseRoundTrip is scenario S6: a PNML file with multi-digit ids and
// out-of-order arcs parses to a Net whose I,O matrices match a
// hand-constructed reference.
func (s *BuilderSuite) TestS6ParseRoundTrip() {
	dir := s.T().TempDir()
	path := filepath.Join(dir, "s6.pnml")
	doc := `<?xml version="1.0"?>
<pnml xmlns="http://www.pnml.org/version-2009/grammar/pnml">
  <net id="n1" type="http://www.pnml.org/version-2009/grammar/ptnet">
    <page id="page1">
      <arc id="a1" source="t10" target="p20"/>
      <transition id="t10"><name><text>fire</text></name></transition>
      <place id="p11"><name><text>in</text></name><initialMarking><text>1</text></initialMarking></place>
      <arc id="a2" source="p11" target="t10"/>
      <place id="p20"><name><text>out</text></name></place>
    </page>
  </net>
</pnml>`
	require.NoError(s.T(), os.WriteFile(path, []byte(doc), 0o644))

	n, warnings, err := net.Load(path, true)
	require := require.New(s.T())
	require.NoError(err)
	require.Empty(warnings)

	// Document order: place p11 first, then place p20; transition t10.
	require.Equal([]string{"p11", "p20"}, n.PlaceIDs)
	require.Equal([]string{"t10"}, n.TransIDs)
	require.Equal([]int{1, 0}, n.M0)

	wantI := [][]int{{1}, {0}}
	wantO := [][]int{{0}, {1}}
	require.Equal(wantI, n.I)
	require.Equal(wantO, n.O)
}

func (s *BuilderSuite) TestLoadDefaultFixture() {
	n, warnings, err := net.Load(filepath.Join("..", "testdata", "default.pnml"), true)
	require := require.New(s.T())
	require.NoError(err)
	require.Empty(warnings)
	require.Equal([]string{"p0", "p1"}, n.PlaceIDs)
	require.Equal([]string{"t0", "t1"}, n.TransIDs)
	require.Equal([]int{1, 0}, n.M0)
}

func (s *BuilderSuite) TestLoadMissingFile() {
	_, _, err := net.Load(filepath.Join(s.T().TempDir(), "nope.pnml"), true)
	s.ErrorIs(err, net.ErrInputNotFound)
}

func (s *BuilderSuite) TestLoadMalformedXML() {
	dir := s.T().TempDir()
	path := filepath.Join(dir, "bad.pnml")
	require.NoError(s.T(), os.WriteFile(path, []byte("not xml"), 0o644))
	_, _, err := net.Load(path, true)
	s.ErrorIs(err, net.ErrMalformedPNML)
}
