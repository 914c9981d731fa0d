package realtime

import (
	"net/http"

	"smartduka/utils"

	"github.com/julienschmidt/httprouter"
)

// Fleet exposes the business-manager controls for the telemetry
// simulator.
type Fleet struct {
	Sim *Simulator
}

func NewFleet(sim *Simulator) *Fleet {
	return &Fleet{Sim: sim}
}

func (f *Fleet) StartTelemetry(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	f.Sim.Start(ps.ByName("orderid"))
	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"telemetry": "started"})
}

func (f *Fleet) StopTelemetry(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	f.Sim.Stop(ps.ByName("orderid"))
	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"telemetry": "stopped"})
}
