package net

import (
	"encoding/xml"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// PNML parsing is a single pass over the document with encoding/xml's
// struct-tag decoding: no third-party XML or validation library appears
// anywhere in the example pack (direct or transitive), so this is one of
// the few places this module reaches for the standard library by
// necessity rather than preference — see the design ledger for the
// full rationale.

type pnmlDoc struct {
	XMLName xml.Name  `xml:"pnml"`
	Nets    []pnmlNet `xml:"net"`
}

type pnmlNet struct {
	Pages []pnmlPage `xml:"page"`
	// Some producers omit <page> and put places/transitions/arcs directly
	// under <net>; both shapes are accepted.
	Places      []pnmlPlace `xml:"place"`
	Transitions []pnmlTrans `xml:"transition"`
	Arcs        []pnmlArc   `xml:"arc"`
}

type pnmlPage struct {
	Places      []pnmlPlace `xml:"place"`
	Transitions []pnmlTrans `xml:"transition"`
	Arcs        []pnmlArc   `xml:"arc"`
}

type pnmlPlace struct {
	ID             string    `xml:"id,attr"`
	Name           *pnmlText `xml:"name>text"`
	InitialMarking *pnmlText `xml:"initialMarking>text"`
}

type pnmlTrans struct {
	ID   string    `xml:"id,attr"`
	Name *pnmlText `xml:"name>text"`
}

type pnmlArc struct {
	Source string `xml:"source,attr"`
	Target string `xml:"target,attr"`
}

type pnmlText struct {
	Value string `xml:",chardata"`
}

// Load parses a PNML file (§6) into a Net and runs Validate on it. Places
// and transitions are discovered in document order, which fixes their
// index in the resulting Net; arc multiplicity accumulates per (place,
// transition) pair.
func Load(path string, strict bool) (*Net, []string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil, fmt.Errorf("%w: %s", ErrInputNotFound, path)
		}
		return nil, nil, fmt.Errorf("%w: %s: %v", ErrInputNotFound, path, err)
	}
	return parse(data, strict)
}

func parse(data []byte, strict bool) (*Net, []string, error) {
	var doc pnmlDoc
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrMalformedPNML, err)
	}
	if len(doc.Nets) == 0 {
		return nil, nil, fmt.Errorf("%w: no <net> element", ErrMalformedPNML)
	}
	src := doc.Nets[0]

	var places []pnmlPlace
	var transitions []pnmlTrans
	var arcs []pnmlArc
	if len(src.Pages) > 0 {
		for _, pg := range src.Pages {
			places = append(places, pg.Places...)
			transitions = append(transitions, pg.Transitions...)
			arcs = append(arcs, pg.Arcs...)
		}
	} else {
		places = src.Places
		transitions = src.Transitions
		arcs = src.Arcs
	}
	if len(places) == 0 && len(transitions) == 0 {
		return nil, nil, fmt.Errorf("%w: no places or transitions found", ErrMalformedPNML)
	}

	b := Build()
	for _, p := range places {
		if p.ID == "" {
			return nil, nil, fmt.Errorf("%w: place missing id", ErrMalformedPNML)
		}
		m0 := 0
		if p.InitialMarking != nil {
			v, err := strconv.Atoi(strings.TrimSpace(p.InitialMarking.Value))
			if err != nil {
				return nil, nil, fmt.Errorf("%w: place %q has unparseable initial marking: %v", ErrMalformedPNML, p.ID, err)
			}
			m0 = v
		}
		name := ""
		if p.Name != nil {
			name = strings.TrimSpace(p.Name.Value)
		}
		b.PlaceNamed(p.ID, name, m0)
	}
	if b.err != nil {
		return nil, nil, b.err
	}
	for _, t := range transitions {
		if t.ID == "" {
			return nil, nil, fmt.Errorf("%w: transition missing id", ErrMalformedPNML)
		}
		name := ""
		if t.Name != nil {
			name = strings.TrimSpace(t.Name.Value)
		}
		b.TransitionNamed(t.ID, name)
	}
	if b.err != nil {
		return nil, nil, b.err
	}
	for _, a := range arcs {
		if a.Source == "" || a.Target == "" {
			return nil, nil, fmt.Errorf("%w: arc missing source or target", ErrMalformedPNML)
		}
		b.Arc(a.Source, a.Target)
	}

	return b.Done(strict)
}
