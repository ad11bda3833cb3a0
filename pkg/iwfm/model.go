package iwfm

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"hydrobind/internal/calendar"
	"hydrobind/internal/native"
	"hydrobind/internal/strpack"
)

// Model drives one native simulation instance: it instantiates the
// engine-side model object from the preprocessor and simulation main
// files, exposes the grid/state getters, and releases the object on Close.
type Model struct {
	handle

	nNodes      *int
	nElements   *int
	nLayers     *int
	nSubregions *int
	nStrmNodes  *int
	nLakes      *int
	nWells      *int
	nBypasses   *int
	nTimeSteps  *int

	nodeIDs      *idList
	elementIDs   *idList
	subregionIDs *idList
	strmNodeIDs  *idList
	lakeIDs      *idList
	wellIDs      *idList
	bypassIDs    *idList
}

// ModelOption adjusts how the engine-side model object is instantiated.
type ModelOption func(*modelOptions)

type modelOptions struct {
	inquiry       bool
	routedStreams bool
}

// ForInquiry opens the model for data access only; the engine skips the
// simulation setup it would need to actually run time steps.
func ForInquiry() ModelOption {
	return func(o *modelOptions) { o.inquiry = true }
}

// WithoutRoutedStreams instantiates the model with stream routing off.
func WithoutRoutedStreams() ModelOption {
	return func(o *modelOptions) { o.routedStreams = false }
}

// NewModel instantiates the engine-side model object.
func NewModel(eng native.Engine, preprocessorFile, simulationFile string, opts ...ModelOption) (*Model, error) {
	o := modelOptions{routedStreams: true}
	for _, opt := range opts {
		opt(&o)
	}

	m := &Model{handle: newHandle(eng, nil, "model")}
	ppBuf, ppLen := charArg(preprocessorFile)
	simBuf, simLen := charArg(simulationFile)
	routed := native.NewInt(boolInt(o.routedStreams))
	inquiry := native.NewInt(boolInt(o.inquiry))
	status := native.NewInt(0)
	if err := eng.Call(native.ProcModelNew, ppBuf, ppLen, simBuf, simLen, routed, inquiry, status); err != nil {
		return nil, err
	}
	m.log.Info("model instantiated",
		zap.String("preprocessor", preprocessorFile),
		zap.String("simulation", simulationFile),
		zap.Bool("inquiry", o.inquiry))
	return m, nil
}

// WithModel runs fn against a freshly instantiated model, releasing the
// engine-side object on every exit path.
func WithModel(eng native.Engine, preprocessorFile, simulationFile string, fn func(*Model) error, opts ...ModelOption) error {
	m, err := NewModel(eng, preprocessorFile, simulationFile, opts...)
	if err != nil {
		return err
	}
	defer m.Close()
	return fn(m)
}

// Close releases the engine-side model object. The facade is unusable
// afterwards.
func (m *Model) Close() error {
	eng, err := m.engine()
	if err != nil {
		return err
	}
	defer m.release()
	status := native.NewInt(0)
	return eng.Call(native.ProcModelKill, status)
}

// Version reports the loaded engine build.
func (m *Model) Version() (string, error) {
	eng, err := m.engine()
	if err != nil {
		return "", err
	}
	return eng.Version(), nil
}

// SetLogFile routes the engine's own diagnostics to path.
func (m *Model) SetLogFile(path string) error {
	eng, err := m.engine()
	if err != nil {
		return err
	}
	buf, length := charArg(path)
	status := native.NewInt(0)
	return eng.Call(native.ProcSetLogFile, buf, length, status)
}

// CloseLogFile closes the engine's diagnostic file.
func (m *Model) CloseLogFile() error {
	eng, err := m.engine()
	if err != nil {
		return err
	}
	status := native.NewInt(0)
	return eng.Call(native.ProcCloseLogFile, status)
}

// --- simulation control -------------------------------------------------

func (m *Model) statusOnly(proc native.ProcID) error {
	eng, err := m.engine()
	if err != nil {
		return err
	}
	status := native.NewInt(0)
	return eng.Call(proc, status)
}

// SimulateAll runs the entire simulation period. The call blocks until
// the engine finishes; there is no host-side cancellation.
func (m *Model) SimulateAll() error { return m.statusOnly(native.ProcModelSimulateAll) }

// SimulateForOneTimeStep advances the simulation by a single step.
func (m *Model) SimulateForOneTimeStep() error {
	return m.statusOnly(native.ProcModelSimulateOneStep)
}

// AdvanceTime moves the simulation clock to the next time stamp.
func (m *Model) AdvanceTime() error { return m.statusOnly(native.ProcModelAdvanceTime) }

// AdvanceState promotes the current state to the previous-step state.
func (m *Model) AdvanceState() error { return m.statusOnly(native.ProcModelAdvanceState) }

// ReadTimeSeriesData loads the time-series input for the current step.
func (m *Model) ReadTimeSeriesData() error { return m.statusOnly(native.ProcModelReadTSData) }

// PrintResults writes the current step's results to the engine's output
// files.
func (m *Model) PrintResults() error { return m.statusOnly(native.ProcModelPrintResults) }

// IsEndOfSimulation reports whether the simulation clock is past the end
// date.
func (m *Model) IsEndOfSimulation() (bool, error) {
	eng, err := m.engine()
	if err != nil {
		return false, err
	}
	flag := native.NewInt(0)
	status := native.NewInt(0)
	if err := eng.Call(native.ProcModelIsEndOfSim, flag, status); err != nil {
		return false, err
	}
	return flag.Value() == 1, nil
}

// --- counts and ids -----------------------------------------------------

// count queries a scalar count once and memoizes it; the grid is
// immutable for the lifetime of one open engine handle.
func (m *Model) count(proc native.ProcID, memo **int) (int, error) {
	if *memo != nil {
		return **memo, nil
	}
	eng, err := m.engine()
	if err != nil {
		return 0, err
	}
	n := native.NewInt(0)
	status := native.NewInt(0)
	if err := eng.Call(proc, n, status); err != nil {
		return 0, err
	}
	v := n.Value()
	*memo = &v
	return v, nil
}

// idsFor fetches an id array once, building its reverse lookup table.
func (m *Model) idsFor(countProc, idProc native.ProcID, memoN **int, memo **idList) (*idList, error) {
	if *memo != nil {
		return *memo, nil
	}
	n, err := m.count(countProc, memoN)
	if err != nil {
		return nil, err
	}
	eng, err := m.engine()
	if err != nil {
		return nil, err
	}
	arr := native.NewIntArray(n)
	nCell := native.NewInt(n)
	status := native.NewInt(0)
	if err := eng.Call(idProc, nCell, arr, status); err != nil {
		return nil, err
	}
	l := newIDList(arr.Ints())
	*memo = l
	return l, nil
}

// NNodes returns the number of groundwater nodes.
func (m *Model) NNodes() (int, error) { return m.count(native.ProcModelGetNNodes, &m.nNodes) }

// NElements returns the number of elements.
func (m *Model) NElements() (int, error) { return m.count(native.ProcModelGetNElements, &m.nElements) }

// NLayers returns the number of aquifer layers.
func (m *Model) NLayers() (int, error) { return m.count(native.ProcModelGetNLayers, &m.nLayers) }

// NSubregions returns the number of subregions.
func (m *Model) NSubregions() (int, error) {
	return m.count(native.ProcModelGetNSubregions, &m.nSubregions)
}

// NStreamNodes returns the number of stream nodes.
func (m *Model) NStreamNodes() (int, error) {
	return m.count(native.ProcModelGetNStrmNodes, &m.nStrmNodes)
}

// NLakes returns the number of lakes.
func (m *Model) NLakes() (int, error) { return m.count(native.ProcModelGetNLakes, &m.nLakes) }

// NWells returns the number of pumping wells.
func (m *Model) NWells() (int, error) { return m.count(native.ProcModelGetNWells, &m.nWells) }

// NTimeSteps returns the number of simulation time steps.
func (m *Model) NTimeSteps() (int, error) {
	return m.count(native.ProcModelGetNTimeSteps, &m.nTimeSteps)
}

func (m *Model) nodeList() (*idList, error) {
	return m.idsFor(native.ProcModelGetNNodes, native.ProcModelGetNodeIDs, &m.nNodes, &m.nodeIDs)
}

func (m *Model) elementList() (*idList, error) {
	return m.idsFor(native.ProcModelGetNElements, native.ProcModelGetElementIDs, &m.nElements, &m.elementIDs)
}

func (m *Model) subregionList() (*idList, error) {
	return m.idsFor(native.ProcModelGetNSubregions, native.ProcModelGetSubregionIDs, &m.nSubregions, &m.subregionIDs)
}

func (m *Model) lakeList() (*idList, error) {
	return m.idsFor(native.ProcModelGetNLakes, native.ProcModelGetLakeIDs, &m.nLakes, &m.lakeIDs)
}

func (m *Model) strmNodeList() (*idList, error) {
	return m.idsFor(native.ProcModelGetNStrmNodes, native.ProcModelGetStrmNodeIDs, &m.nStrmNodes, &m.strmNodeIDs)
}

func (m *Model) wellList() (*idList, error) {
	return m.idsFor(native.ProcModelGetNWells, native.ProcModelGetWellIDs, &m.nWells, &m.wellIDs)
}

func (m *Model) bypassList() (*idList, error) {
	return m.idsFor(native.ProcModelGetNBypasses, native.ProcModelGetBypassIDs, &m.nBypasses, &m.bypassIDs)
}

// NodeIDs returns the user-facing groundwater node ids.
func (m *Model) NodeIDs() ([]int, error) {
	l, err := m.nodeList()
	if err != nil {
		return nil, err
	}
	return l.list(), nil
}

// ElementIDs returns the user-facing element ids.
func (m *Model) ElementIDs() ([]int, error) {
	l, err := m.elementList()
	if err != nil {
		return nil, err
	}
	return l.list(), nil
}

// SubregionIDs returns the user-facing subregion ids.
func (m *Model) SubregionIDs() ([]int, error) {
	l, err := m.subregionList()
	if err != nil {
		return nil, err
	}
	return l.list(), nil
}

// StreamNodeIDs returns the user-facing stream node ids.
func (m *Model) StreamNodeIDs() ([]int, error) {
	l, err := m.strmNodeList()
	if err != nil {
		return nil, err
	}
	return l.list(), nil
}

// LakeIDs returns the user-facing lake ids.
func (m *Model) LakeIDs() ([]int, error) {
	l, err := m.lakeList()
	if err != nil {
		return nil, err
	}
	return l.list(), nil
}

// WellIDs returns the user-facing well ids.
func (m *Model) WellIDs() ([]int, error) {
	l, err := m.wellList()
	if err != nil {
		return nil, err
	}
	return l.list(), nil
}

// --- grid geometry ------------------------------------------------------

// NodeCoordinates returns the x and y coordinates of every node, in node
// id order.
func (m *Model) NodeCoordinates() (xs, ys []float64, err error) {
	n, err := m.NNodes()
	if err != nil {
		return nil, nil, err
	}
	eng, err := m.engine()
	if err != nil {
		return nil, nil, err
	}
	x := native.NewDoubleArray(n)
	y := native.NewDoubleArray(n)
	nCell := native.NewInt(n)
	status := native.NewInt(0)
	if err := eng.Call(native.ProcModelGetNodeXY, nCell, x, y, status); err != nil {
		return nil, nil, err
	}
	return x.Floats(), y.Floats(), nil
}

// maxElementVertices is the engine's fixed vertex-slot count per element;
// triangular elements leave the fourth slot zero.
const maxElementVertices = 4

// ElementConfig returns the node ids at the vertices of one element.
func (m *Model) ElementConfig(elementID int) ([]int, error) {
	elems, err := m.elementList()
	if err != nil {
		return nil, err
	}
	pos, ok := elems.indexOf(elementID)
	if !ok {
		return nil, fmt.Errorf("%w: element id %d", ErrUnknownID, elementID)
	}
	nodes, err := m.nodeList()
	if err != nil {
		return nil, err
	}
	eng, err := m.engine()
	if err != nil {
		return nil, err
	}

	idx := native.NewInt(pos + 1) // engine is one-based
	vertices := native.NewIntArray(maxElementVertices)
	nCell := native.NewInt(maxElementVertices)
	status := native.NewInt(0)
	if err := eng.Call(native.ProcModelGetElementConfig, idx, nCell, vertices, status); err != nil {
		return nil, err
	}

	var out []int
	for _, v := range vertices.Ints() {
		if v == 0 {
			continue // unused slot on triangular elements
		}
		id, ok := nodes.at(v)
		if !ok {
			return nil, fmt.Errorf("%w: engine returned node index %d", ErrUnknownID, v)
		}
		out = append(out, id)
	}
	return out, nil
}

// SubregionNames returns the display names of the subregions, in
// subregion id order.
func (m *Model) SubregionNames() ([]string, error) {
	n, err := m.NSubregions()
	if err != nil {
		return nil, err
	}
	eng, err := m.engine()
	if err != nil {
		return nil, err
	}
	buf := native.EmptyCharBuffer(native.NameWidth * n)
	length := native.NewInt(buf.Len())
	offsets := native.NewIntArray(n)
	nCell := native.NewInt(n)
	status := native.NewInt(0)
	if err := eng.Call(native.ProcModelGetSubregionNames, nCell, buf, length, offsets, status); err != nil {
		return nil, err
	}
	return strpack.Decode(buf.Raw(), offsets, n)
}

// SubregionForElements returns, element by element, the subregion id each
// element belongs to.
func (m *Model) SubregionForElements() ([]int, error) {
	n, err := m.NElements()
	if err != nil {
		return nil, err
	}
	eng, err := m.engine()
	if err != nil {
		return nil, err
	}
	arr := native.NewIntArray(n)
	nCell := native.NewInt(n)
	status := native.NewInt(0)
	if err := eng.Call(native.ProcModelGetElemSubregions, nCell, arr, status); err != nil {
		return nil, err
	}
	return arr.Ints(), nil
}

// --- stratigraphy -------------------------------------------------------

// GroundSurfaceElevation returns the ground surface elevation at every
// node.
func (m *Model) GroundSurfaceElevation() ([]float64, error) {
	n, err := m.NNodes()
	if err != nil {
		return nil, err
	}
	eng, err := m.engine()
	if err != nil {
		return nil, err
	}
	arr := native.NewDoubleArray(n)
	nCell := native.NewInt(n)
	status := native.NewInt(0)
	if err := eng.Call(native.ProcModelGetGSElev, nCell, arr, status); err != nil {
		return nil, err
	}
	return arr.Floats(), nil
}

func (m *Model) layerMatrix(proc native.ProcID) ([][]float64, error) {
	layers, err := m.NLayers()
	if err != nil {
		return nil, err
	}
	nodes, err := m.NNodes()
	if err != nil {
		return nil, err
	}
	eng, err := m.engine()
	if err != nil {
		return nil, err
	}
	flat := native.NewDoubleArray(layers * nodes)
	nLayers := native.NewInt(layers)
	nNodes := native.NewInt(nodes)
	status := native.NewInt(0)
	if err := eng.Call(proc, nLayers, nNodes, flat, status); err != nil {
		return nil, err
	}
	out := make([][]float64, layers)
	for l := 0; l < layers; l++ {
		row := make([]float64, nodes)
		copy(row, flat[l*nodes:(l+1)*nodes])
		out[l] = row
	}
	return out, nil
}

func (m *Model) checkLayer(layer int) (int, error) {
	layers, err := m.NLayers()
	if err != nil {
		return 0, err
	}
	if layer < 1 || layer > layers {
		return 0, fmt.Errorf("%w: layer %d of %d", ErrUnknownID, layer, layers)
	}
	return layers, nil
}

// StratigraphyForLayer returns the aquifer top and bottom elevations of
// one layer, at every node. Layers are numbered from 1 at the surface.
func (m *Model) StratigraphyForLayer(layer int) (top, bottom []float64, err error) {
	if _, err := m.checkLayer(layer); err != nil {
		return nil, nil, err
	}
	tops, err := m.layerMatrix(native.ProcModelGetAquiferTop)
	if err != nil {
		return nil, nil, err
	}
	bottoms, err := m.layerMatrix(native.ProcModelGetAquiferBottom)
	if err != nil {
		return nil, nil, err
	}
	return tops[layer-1], bottoms[layer-1], nil
}

// --- state getters ------------------------------------------------------

// scaledLayerMatrix fetches a layers-by-nodes state matrix with a unit
// conversion factor.
func (m *Model) scaledLayerMatrix(proc native.ProcID, factor float64) ([][]float64, error) {
	layers, err := m.NLayers()
	if err != nil {
		return nil, err
	}
	nodes, err := m.NNodes()
	if err != nil {
		return nil, err
	}
	eng, err := m.engine()
	if err != nil {
		return nil, err
	}
	flat := native.NewDoubleArray(layers * nodes)
	nLayers := native.NewInt(layers)
	nNodes := native.NewInt(nodes)
	f := native.NewDouble(factor)
	status := native.NewInt(0)
	if err := eng.Call(proc, nLayers, nNodes, f, flat, status); err != nil {
		return nil, err
	}
	out := make([][]float64, layers)
	for l := 0; l < layers; l++ {
		row := make([]float64, nodes)
		copy(row, flat[l*nodes:(l+1)*nodes])
		out[l] = row
	}
	return out, nil
}

// GWHeadsAll returns the current groundwater heads, one row per layer and
// one column per node, scaled by factor.
func (m *Model) GWHeadsAll(factor float64) ([][]float64, error) {
	return m.scaledLayerMatrix(native.ProcModelGetGWHeadsAll, factor)
}

// GWHeadsForLayer returns the current heads of one layer, scaled by
// factor.
func (m *Model) GWHeadsForLayer(layer int, factor float64) ([]float64, error) {
	if _, err := m.checkLayer(layer); err != nil {
		return nil, err
	}
	nodes, err := m.NNodes()
	if err != nil {
		return nil, err
	}
	eng, err := m.engine()
	if err != nil {
		return nil, err
	}
	arr := native.NewDoubleArray(nodes)
	layerCell := native.NewInt(layer)
	nNodes := native.NewInt(nodes)
	f := native.NewDouble(factor)
	status := native.NewInt(0)
	if err := eng.Call(native.ProcModelGetGWHeadsLayer, layerCell, nNodes, f, arr, status); err != nil {
		return nil, err
	}
	return arr.Floats(), nil
}

// SubsidenceAll returns the current land subsidence, one row per layer
// and one column per node, scaled by factor.
func (m *Model) SubsidenceAll(factor float64) ([][]float64, error) {
	return m.scaledLayerMatrix(native.ProcModelGetSubsidenceAll, factor)
}

func (m *Model) streamArray(proc native.ProcID, factor float64) ([]float64, error) {
	n, err := m.NStreamNodes()
	if err != nil {
		return nil, err
	}
	eng, err := m.engine()
	if err != nil {
		return nil, err
	}
	arr := native.NewDoubleArray(n)
	nCell := native.NewInt(n)
	f := native.NewDouble(factor)
	status := native.NewInt(0)
	if err := eng.Call(proc, nCell, f, arr, status); err != nil {
		return nil, err
	}
	return arr.Floats(), nil
}

// StreamFlows returns the current flow at every stream node, scaled by
// factor.
func (m *Model) StreamFlows(factor float64) ([]float64, error) {
	return m.streamArray(native.ProcModelGetStrmFlows, factor)
}

// StreamStages returns the current stage at every stream node, scaled by
// factor.
func (m *Model) StreamStages(factor float64) ([]float64, error) {
	return m.streamArray(native.ProcModelGetStrmStages, factor)
}

// PumpingByWell returns the current pumping at every well, in well id
// order, scaled by factor.
func (m *Model) PumpingByWell(factor float64) ([]float64, error) {
	n, err := m.NWells()
	if err != nil {
		return nil, err
	}
	eng, err := m.engine()
	if err != nil {
		return nil, err
	}
	arr := native.NewDoubleArray(n)
	nCell := native.NewInt(n)
	f := native.NewDouble(factor)
	status := native.NewInt(0)
	if err := eng.Call(native.ProcModelGetWellPumping, nCell, f, arr, status); err != nil {
		return nil, err
	}
	return arr.Floats(), nil
}

// --- time ---------------------------------------------------------------

// TimeSpecs returns every simulation time stamp and the simulation's
// native interval label.
func (m *Model) TimeSpecs() (dates []string, interval string, err error) {
	n, err := m.NTimeSteps()
	if err != nil {
		return nil, "", err
	}
	eng, err := m.engine()
	if err != nil {
		return nil, "", err
	}
	datesBuf := native.EmptyCharBuffer(calendar.DateWidth * n)
	datesLen := native.NewInt(datesBuf.Len())
	intervalBuf := native.EmptyCharBuffer(native.NameWidth)
	intervalLen := native.NewInt(intervalBuf.Len())
	nCell := native.NewInt(n)
	offsets := native.NewIntArray(n)
	status := native.NewInt(0)
	if err := eng.Call(native.ProcModelGetTimeSpecs,
		datesBuf, datesLen, intervalBuf, intervalLen, nCell, offsets, status); err != nil {
		return nil, "", err
	}
	dates, err = strpack.Decode(datesBuf.Raw(), offsets, n)
	if err != nil {
		return nil, "", err
	}
	return dates, intervalBuf.String(), nil
}

// CurrentDateTime returns the simulation clock as an engine timestamp.
func (m *Model) CurrentDateTime() (string, error) {
	eng, err := m.engine()
	if err != nil {
		return "", err
	}
	buf := native.EmptyCharBuffer(calendar.DateWidth)
	length := native.NewInt(buf.Len())
	status := native.NewInt(0)
	if err := eng.Call(native.ProcModelGetCurrentDate, buf, length, status); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// --- flow destinations --------------------------------------------------

// maxDestTypes caps the destination-type table; the engine defines well
// under ten.
const maxDestTypes = 10

// FlowDestinationTypeIDs returns the engine's destination-type names
// mapped to their integer codes. Names and codes are paired by position
// as the engine returned them.
func (m *Model) FlowDestinationTypeIDs() (map[string]int, error) {
	eng, err := m.engine()
	if err != nil {
		return nil, err
	}
	n := native.NewInt(0)
	codes := native.NewIntArray(maxDestTypes)
	names := native.EmptyCharBuffer(native.NameWidth * maxDestTypes)
	namesLen := native.NewInt(names.Len())
	offsets := native.NewIntArray(maxDestTypes)
	status := native.NewInt(0)
	if err := eng.Call(native.ProcModelGetFlowDestTypes, n, codes, names, namesLen, offsets, status); err != nil {
		return nil, err
	}
	labels, err := strpack.Decode(names.Raw(), offsets, n.Value())
	if err != nil {
		return nil, err
	}
	ids := codes.Ints()
	out := make(map[string]int, len(labels))
	for i, label := range labels {
		out[strings.ToLower(label)] = ids[i]
	}
	return out, nil
}

// BypassDestination describes where one bypass exports its flow.
type BypassDestination struct {
	BypassID        int
	DestinationType string
	DestinationID   int // zero when the destination is outside the model
}

// BypassExportDestinations returns, bypass by bypass, the destination
// type and the user-facing id of the receiving element, subregion or
// lake. Each destination index is resolved against the id list of its own
// destination's type.
func (m *Model) BypassExportDestinations() ([]BypassDestination, error) {
	bypasses, err := m.bypassList()
	if err != nil {
		return nil, err
	}
	nb := len(bypasses.ids)
	if nb == 0 {
		return nil, nil
	}
	destTypes, err := m.FlowDestinationTypeIDs()
	if err != nil {
		return nil, err
	}
	typeName := make(map[int]string, len(destTypes))
	for name, code := range destTypes {
		typeName[code] = name
	}

	eng, err := m.engine()
	if err != nil {
		return nil, err
	}
	types := native.NewIntArray(nb)
	indices := native.NewIntArray(nb)
	nCell := native.NewInt(nb)
	status := native.NewInt(0)
	if err := eng.Call(native.ProcModelGetBypassDests, nCell, types, indices, status); err != nil {
		return nil, err
	}

	typeCodes := types.Ints()
	destIndices := indices.Ints()
	out := make([]BypassDestination, nb)
	for i := 0; i < nb; i++ {
		name, known := typeName[typeCodes[i]]
		if !known {
			return nil, fmt.Errorf("%w: engine returned destination type code %d", ErrUnknownID, typeCodes[i])
		}
		idx := destIndices[i]
		d := BypassDestination{BypassID: bypasses.ids[i], DestinationType: name}
		var list *idList
		switch name {
		case "element":
			list, err = m.elementList()
		case "subregion":
			list, err = m.subregionList()
		case "lake":
			list, err = m.lakeList()
		case "stream node":
			list, err = m.strmNodeList()
		}
		if err != nil {
			return nil, err
		}
		if list != nil {
			id, ok := list.at(idx)
			if !ok {
				return nil, fmt.Errorf("%w: engine returned %s index %d", ErrUnknownID, name, idx)
			}
			d.DestinationID = id
		}
		out[i] = d
	}
	return out, nil
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
