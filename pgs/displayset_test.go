package pgs

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func completeSet() []Segment {
	pcs := &PCS{}
	wds := &WDS{}
	pds := &PDS{}
	ods := &ODS{}
	return []Segment{
		{PCS: pcs}, {WDS: wds}, {PDS: pds}, {ODS: ods}, {End: true},
	}
}

// S6 — PCS,WDS,END yields one EmptyFrame display set.
func TestAssembleDisplaySetsEmptyFrame(t *testing.T) {
	segs := []Segment{{PCS: &PCS{}}, {WDS: &WDS{}}, {End: true}}
	sets := assembleDisplaySets(segs)
	require.Len(t, sets, 1)
	require.Equal(t, DisplaySetEmptyFrame, sets[0].State())
}

// PCS,WDS,PDS,ODS,END,PCS,WDS,END -> Complete then EmptyFrame.
func TestAssembleDisplaySetsSequence(t *testing.T) {
	var segs []Segment
	segs = append(segs, completeSet()...)
	segs = append(segs, []Segment{{PCS: &PCS{}}, {WDS: &WDS{}}, {End: true}}...)

	sets := assembleDisplaySets(segs)
	require.Len(t, sets, 2)
	require.Equal(t, DisplaySetComplete, sets[0].State())
	require.Equal(t, DisplaySetEmptyFrame, sets[1].State())
}

// No END marker at all yields zero display sets.
func TestAssembleDisplaySetsNoEndYieldsNone(t *testing.T) {
	segs := []Segment{{PCS: &PCS{}}, {WDS: &WDS{}}, {PDS: &PDS{}}, {ODS: &ODS{}}}
	sets := assembleDisplaySets(segs)
	require.Empty(t, sets)
}

// Trailing segments after the last END, with no terminating END of their
// own, are discarded rather than flushed.
func TestAssembleDisplaySetsTrailingSegmentsDiscarded(t *testing.T) {
	segs := append(completeSet(), Segment{PCS: &PCS{}})
	sets := assembleDisplaySets(segs)
	require.Len(t, sets, 1)
	require.Equal(t, DisplaySetComplete, sets[0].State())
}

// A display set missing PCS or WDS is Incomplete, even when PDS and ODS are
// present.
func TestDisplaySetStateIncompleteWithoutPCSOrWDS(t *testing.T) {
	d := DisplaySet{}
	require.Equal(t, DisplaySetIncomplete, d.State())

	segs := []Segment{{PDS: &PDS{}}, {ODS: &ODS{}}}
	var acc accumulator
	for _, s := range segs {
		acc.apply(s)
	}
	d2 := acc.snapshot()
	require.Equal(t, DisplaySetIncomplete, d2.State())
}

func TestDisplaySetRLEPayloadRequiresComplete(t *testing.T) {
	d := DisplaySet{}
	_, err := d.RLEPayload()
	require.Error(t, err)
}

func TestDisplaySetDecodedImageRequiresComplete(t *testing.T) {
	d := DisplaySet{}
	_, err := d.DecodedImage(false)
	require.Error(t, err)
}

// Later segments of the same kind within one epoch overwrite earlier ones.
func TestAccumulatorLatestWins(t *testing.T) {
	var acc accumulator
	first := &PCS{Width: 100}
	second := &PCS{Width: 200}
	acc.apply(Segment{PCS: first})
	acc.apply(Segment{PCS: second})
	snap := acc.snapshot()
	require.Same(t, second, snap.PCS())
}
