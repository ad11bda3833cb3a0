package native

// ProcID names an engine capability independently of the exported symbol
// that backs it. The capability table below is the single declarative list
// of every entry point the binding knows how to call; it is intersected
// with the library's actual exports once at load time.
type ProcID string

// ProcSpec describes one engine entry point.
type ProcSpec struct {
	Symbol     string
	MinVersion string // earliest engine build exporting the symbol
}

// Engine-global procedures.
const (
	ProcGetVersion     ProcID = "get_version"
	ProcGetLastMessage ProcID = "get_last_message"
	ProcSetLogFile     ProcID = "set_log_file"
	ProcCloseLogFile   ProcID = "close_log_file"
	ProcIsTimeGreater  ProcID = "is_time_greater"
	ProcNIntervals     ProcID = "n_intervals"
	ProcIncrementTime  ProcID = "increment_time"
)

// Model procedures.
const (
	ProcModelNew               ProcID = "model_new"
	ProcModelKill              ProcID = "model_kill"
	ProcModelSimulateAll       ProcID = "model_simulate_all"
	ProcModelSimulateOneStep   ProcID = "model_simulate_one_step"
	ProcModelAdvanceTime       ProcID = "model_advance_time"
	ProcModelAdvanceState      ProcID = "model_advance_state"
	ProcModelReadTSData        ProcID = "model_read_ts_data"
	ProcModelPrintResults      ProcID = "model_print_results"
	ProcModelIsEndOfSim        ProcID = "model_is_end_of_simulation"
	ProcModelGetNNodes         ProcID = "model_get_n_nodes"
	ProcModelGetNodeIDs        ProcID = "model_get_node_ids"
	ProcModelGetNodeXY         ProcID = "model_get_node_xy"
	ProcModelGetNElements      ProcID = "model_get_n_elements"
	ProcModelGetElementIDs     ProcID = "model_get_element_ids"
	ProcModelGetElementConfig  ProcID = "model_get_element_config"
	ProcModelGetNLayers        ProcID = "model_get_n_layers"
	ProcModelGetNSubregions    ProcID = "model_get_n_subregions"
	ProcModelGetSubregionIDs   ProcID = "model_get_subregion_ids"
	ProcModelGetSubregionNames ProcID = "model_get_subregion_names"
	ProcModelGetElemSubregions ProcID = "model_get_elem_subregions"
	ProcModelGetGSElev         ProcID = "model_get_gs_elev"
	ProcModelGetAquiferTop     ProcID = "model_get_aquifer_top"
	ProcModelGetAquiferBottom  ProcID = "model_get_aquifer_bottom"
	ProcModelGetGWHeadsAll     ProcID = "model_get_gw_heads_all"
	ProcModelGetGWHeadsLayer   ProcID = "model_get_gw_heads_layer"
	ProcModelGetSubsidenceAll  ProcID = "model_get_subsidence_all"
	ProcModelGetNStrmNodes     ProcID = "model_get_n_strm_nodes"
	ProcModelGetStrmNodeIDs    ProcID = "model_get_strm_node_ids"
	ProcModelGetStrmFlows      ProcID = "model_get_strm_flows"
	ProcModelGetStrmStages     ProcID = "model_get_strm_stages"
	ProcModelGetNLakes         ProcID = "model_get_n_lakes"
	ProcModelGetLakeIDs        ProcID = "model_get_lake_ids"
	ProcModelGetNWells         ProcID = "model_get_n_wells"
	ProcModelGetWellIDs        ProcID = "model_get_well_ids"
	ProcModelGetWellPumping    ProcID = "model_get_well_pumping"
	ProcModelGetNTimeSteps     ProcID = "model_get_n_time_steps"
	ProcModelGetTimeSpecs      ProcID = "model_get_time_specs"
	ProcModelGetCurrentDate    ProcID = "model_get_current_date"
	ProcModelGetFlowDestTypes  ProcID = "model_get_flow_dest_types"
	ProcModelGetNBypasses      ProcID = "model_get_n_bypasses"
	ProcModelGetBypassIDs      ProcID = "model_get_bypass_ids"
	ProcModelGetBypassDests    ProcID = "model_get_bypass_dests"
)

// Budget procedures.
const (
	ProcBudgetOpenFile      ProcID = "budget_open_file"
	ProcBudgetCloseFile     ProcID = "budget_close_file"
	ProcBudgetGetNLocations ProcID = "budget_get_n_locations"
	ProcBudgetGetLocations  ProcID = "budget_get_locations"
	ProcBudgetGetNTimeSteps ProcID = "budget_get_n_time_steps"
	ProcBudgetGetTimeSpecs  ProcID = "budget_get_time_specs"
	ProcBudgetGetNTitles    ProcID = "budget_get_n_titles"
	ProcBudgetGetTitles     ProcID = "budget_get_titles"
	ProcBudgetGetNColumns   ProcID = "budget_get_n_columns"
	ProcBudgetGetHeaders    ProcID = "budget_get_headers"
	ProcBudgetGetValues     ProcID = "budget_get_values"
)

// ZBudget procedures.
const (
	ProcZBudgetOpenFile      ProcID = "zbudget_open_file"
	ProcZBudgetCloseFile     ProcID = "zbudget_close_file"
	ProcZBudgetGenZoneList   ProcID = "zbudget_generate_zone_list"
	ProcZBudgetGetNZones     ProcID = "zbudget_get_n_zones"
	ProcZBudgetGetZoneIDs    ProcID = "zbudget_get_zone_ids"
	ProcZBudgetGetZoneNames  ProcID = "zbudget_get_zone_names"
	ProcZBudgetGetNTimeSteps ProcID = "zbudget_get_n_time_steps"
	ProcZBudgetGetTimeSpecs  ProcID = "zbudget_get_time_specs"
	ProcZBudgetGetNTitles    ProcID = "zbudget_get_n_titles"
	ProcZBudgetGetTitles     ProcID = "zbudget_get_titles"
	ProcZBudgetGetNColumns   ProcID = "zbudget_get_n_columns_for_zone"
	ProcZBudgetGetHeaders    ProcID = "zbudget_get_headers_for_zone"
	ProcZBudgetGetValues     ProcID = "zbudget_get_values_for_some_zones"
)

// Engine build baselines. Most of the API dates back to the first public
// 2015 build; a handful of entry points arrived later.
const (
	verBase = "2015.0.706"
	ver1045 = "2015.0.1045"
	ver1273 = "2015.0.1273"
)

// Procs is the capability table.
var Procs = map[ProcID]ProcSpec{
	ProcGetVersion:     {"IW_GetVersion", verBase},
	ProcGetLastMessage: {"IW_GetLastMessage", verBase},
	ProcSetLogFile:     {"IW_SetLogFile", verBase},
	ProcCloseLogFile:   {"IW_CloseLogFile", verBase},
	ProcIsTimeGreater:  {"IW_IsTimeGreaterThan", verBase},
	ProcNIntervals:     {"IW_GetNIntervals", verBase},
	ProcIncrementTime:  {"IW_IncrementTime", verBase},

	ProcModelNew:               {"IW_Model_New", verBase},
	ProcModelKill:              {"IW_Model_Kill", verBase},
	ProcModelSimulateAll:       {"IW_Model_SimulateAll", ver1045},
	ProcModelSimulateOneStep:   {"IW_Model_SimulateForOneTimeStep", ver1045},
	ProcModelAdvanceTime:       {"IW_Model_AdvanceTime", ver1045},
	ProcModelAdvanceState:      {"IW_Model_AdvanceState", ver1045},
	ProcModelReadTSData:        {"IW_Model_ReadTSData", ver1045},
	ProcModelPrintResults:      {"IW_Model_PrintResults", ver1045},
	ProcModelIsEndOfSim:        {"IW_Model_IsEndOfSimulation", ver1045},
	ProcModelGetNNodes:         {"IW_Model_GetNNodes", verBase},
	ProcModelGetNodeIDs:        {"IW_Model_GetNodeIDs", verBase},
	ProcModelGetNodeXY:         {"IW_Model_GetNodeXY", verBase},
	ProcModelGetNElements:      {"IW_Model_GetNElements", verBase},
	ProcModelGetElementIDs:     {"IW_Model_GetElementIDs", verBase},
	ProcModelGetElementConfig:  {"IW_Model_GetElementConfigData", verBase},
	ProcModelGetNLayers:        {"IW_Model_GetNLayers", verBase},
	ProcModelGetNSubregions:    {"IW_Model_GetNSubregions", verBase},
	ProcModelGetSubregionIDs:   {"IW_Model_GetSubregionIDs", verBase},
	ProcModelGetSubregionNames: {"IW_Model_GetSubregionNames", verBase},
	ProcModelGetElemSubregions: {"IW_Model_GetElemSubregions", verBase},
	ProcModelGetGSElev:         {"IW_Model_GetGSElev", verBase},
	ProcModelGetAquiferTop:     {"IW_Model_GetAquiferTopElev", verBase},
	ProcModelGetAquiferBottom:  {"IW_Model_GetAquiferBottomElev", verBase},
	ProcModelGetGWHeadsAll:     {"IW_Model_GetGWHeads_All", verBase},
	ProcModelGetGWHeadsLayer:   {"IW_Model_GetGWHeads_ForALayer", verBase},
	ProcModelGetSubsidenceAll:  {"IW_Model_GetSubsidence_All", ver1273},
	ProcModelGetNStrmNodes:     {"IW_Model_GetNStrmNodes", verBase},
	ProcModelGetStrmNodeIDs:    {"IW_Model_GetStrmNodeIDs", verBase},
	ProcModelGetStrmFlows:      {"IW_Model_GetStrmFlows", verBase},
	ProcModelGetStrmStages:     {"IW_Model_GetStrmStages", verBase},
	ProcModelGetNLakes:         {"IW_Model_GetNLakes", verBase},
	ProcModelGetLakeIDs:        {"IW_Model_GetLakeIDs", verBase},
	ProcModelGetNWells:         {"IW_Model_GetNWells", ver1045},
	ProcModelGetWellIDs:        {"IW_Model_GetWellIDs", ver1045},
	ProcModelGetWellPumping:    {"IW_Model_GetWellPumping", ver1045},
	ProcModelGetNTimeSteps:     {"IW_Model_GetNTimeSteps", verBase},
	ProcModelGetTimeSpecs:      {"IW_Model_GetTimeSpecs", verBase},
	ProcModelGetCurrentDate:    {"IW_Model_GetCurrentDateAndTime", verBase},
	ProcModelGetFlowDestTypes:  {"IW_Model_GetFlowDestTypes", ver1045},
	ProcModelGetNBypasses:      {"IW_Model_GetNBypasses", ver1273},
	ProcModelGetBypassIDs:      {"IW_Model_GetBypassIDs", ver1273},
	ProcModelGetBypassDests:    {"IW_Model_GetBypassExportDestinations", ver1273},

	ProcBudgetOpenFile:      {"IW_Budget_OpenFile", verBase},
	ProcBudgetCloseFile:     {"IW_Budget_CloseFile", verBase},
	ProcBudgetGetNLocations: {"IW_Budget_GetNLocations", verBase},
	ProcBudgetGetLocations:  {"IW_Budget_GetLocationNames", verBase},
	ProcBudgetGetNTimeSteps: {"IW_Budget_GetNTimeSteps", verBase},
	ProcBudgetGetTimeSpecs:  {"IW_Budget_GetTimeSpecs", verBase},
	ProcBudgetGetNTitles:    {"IW_Budget_GetNTitleLines", verBase},
	ProcBudgetGetTitles:     {"IW_Budget_GetTitleLines", verBase},
	ProcBudgetGetNColumns:   {"IW_Budget_GetNColumns", verBase},
	ProcBudgetGetHeaders:    {"IW_Budget_GetColumnHeaders", verBase},
	ProcBudgetGetValues:     {"IW_Budget_GetValues", verBase},

	ProcZBudgetOpenFile:      {"IW_ZBudget_OpenFile", verBase},
	ProcZBudgetCloseFile:     {"IW_ZBudget_CloseFile", verBase},
	ProcZBudgetGenZoneList:   {"IW_ZBudget_GenerateZoneList", verBase},
	ProcZBudgetGetNZones:     {"IW_ZBudget_GetNZones", verBase},
	ProcZBudgetGetZoneIDs:    {"IW_ZBudget_GetZoneList", verBase},
	ProcZBudgetGetZoneNames:  {"IW_ZBudget_GetZoneNames", verBase},
	ProcZBudgetGetNTimeSteps: {"IW_ZBudget_GetNTimeSteps", verBase},
	ProcZBudgetGetTimeSpecs:  {"IW_ZBudget_GetTimeSpecs", verBase},
	ProcZBudgetGetNTitles:    {"IW_ZBudget_GetNTitleLines", verBase},
	ProcZBudgetGetTitles:     {"IW_ZBudget_GetTitleLines", verBase},
	ProcZBudgetGetNColumns:   {"IW_ZBudget_GetNColumnsForZone", verBase},
	ProcZBudgetGetHeaders:    {"IW_ZBudget_GetColumnHeadersForZone", verBase},
	ProcZBudgetGetValues:     {"IW_ZBudget_GetValuesForSomeZones", verBase},
}
