package iwfm

import (
	"fmt"
	"sort"
	"strings"

	"hydrobind/internal/native"
)

// ZoneExtent selects how a zone definition addresses the grid.
type ZoneExtent int

const (
	// ExtentHorizontal assigns whole elements to zones, all layers at
	// once.
	ExtentHorizontal ZoneExtent = 1

	// ExtentVertical assigns (element, layer) pairs to zones.
	ExtentVertical ZoneExtent = 2
)

// ZoneDefinition is a caller-supplied partition of elements (optionally
// by layer) into zones, submitted to the engine for flow aggregation. The
// binding only validates and marshals it; the engine does the accounting.
type ZoneDefinition struct {
	extent   ZoneExtent
	elements []int
	layers   []int
	zones    []int
	assigned map[[2]int]bool
	names    map[int]string
}

// NewZoneDefinition returns an empty definition with the given extent.
func NewZoneDefinition(extent ZoneExtent) *ZoneDefinition {
	return &ZoneDefinition{
		extent:   extent,
		assigned: make(map[[2]int]bool),
		names:    make(map[int]string),
	}
}

// Add assigns one element (at one layer, for vertical extents) to a zone.
// Horizontal definitions must pass layer 0.
func (z *ZoneDefinition) Add(element, layer, zone int) error {
	if element < 1 {
		return fmt.Errorf("%w: element id %d", ErrUnknownID, element)
	}
	if zone < 1 {
		return fmt.Errorf("%w: zone id %d", ErrUnknownID, zone)
	}
	switch z.extent {
	case ExtentHorizontal:
		if layer != 0 {
			return fmt.Errorf("iwfm: horizontal zone definition takes layer 0, got %d", layer)
		}
	case ExtentVertical:
		if layer < 1 {
			return fmt.Errorf("%w: layer %d", ErrUnknownID, layer)
		}
	default:
		return fmt.Errorf("iwfm: invalid zone extent %d", z.extent)
	}
	key := [2]int{element, layer}
	if z.assigned[key] {
		return fmt.Errorf("iwfm: element %d layer %d already assigned", element, layer)
	}
	z.assigned[key] = true
	z.elements = append(z.elements, element)
	z.layers = append(z.layers, layer)
	z.zones = append(z.zones, zone)
	return nil
}

// Name attaches a display name to a zone id. Unnamed zones are reported
// by the engine under their numeric id.
func (z *ZoneDefinition) Name(zone int, label string) {
	z.names[zone] = label
}

func (z *ZoneDefinition) validate() error {
	if len(z.elements) == 0 {
		return fmt.Errorf("%w: zone definition has no assignments", ErrEmptySelection)
	}
	zoneSet := make(map[int]bool, len(z.zones))
	for _, id := range z.zones {
		zoneSet[id] = true
	}
	for id := range z.names {
		if !zoneSet[id] {
			return fmt.Errorf("%w: named zone %d has no assignments", ErrUnknownID, id)
		}
	}
	return nil
}

// marshal lowers the definition to the parallel arrays the engine reads.
func (z *ZoneDefinition) marshal() (extent *native.Int, n *native.Int,
	elements, layers, zones native.IntArray,
	nNames *native.Int, nameZones native.IntArray, names *native.CharBuffer, namesLen *native.Int) {

	extent = native.NewInt(int(z.extent))
	n = native.NewInt(len(z.elements))
	elements = native.IntsToArray(z.elements)
	layers = native.IntsToArray(z.layers)
	zones = native.IntsToArray(z.zones)

	ids := make([]int, 0, len(z.names))
	for id := range z.names {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	nNames = native.NewInt(len(ids))
	nameZones = native.IntsToArray(ids)
	var packed strings.Builder
	for _, id := range ids {
		packed.WriteString(padUnit(z.names[id]))
	}
	names = native.NewCharBuffer(packed.String(), native.NameWidth*max(len(ids), 1))
	namesLen = native.NewInt(names.Len())
	return
}
