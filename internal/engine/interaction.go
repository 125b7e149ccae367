package engine

import "agentsim/internal/model"

// processSuccess applies the symmetric relation reward for a
// successful interaction between i (initiator) and j (target).
func (e *Engine) processSuccess(i, j int) {
	si := e.state.Sensitivity(i)
	sj := e.state.Sensitivity(j)

	e.addR(i, j, model.ChannelUtility, 2*si)
	e.addR(i, j, model.ChannelAffinity, 2*si)
	e.addR(i, j, model.ChannelTrust, 1*si)
	e.addR(i, j, model.ChannelResponsiveness, 1*si)

	e.addR(j, i, model.ChannelUtility, 2*sj)
	e.addR(j, i, model.ChannelAffinity, 2*sj)
	e.addR(j, i, model.ChannelTrust, 1*sj)
	e.addR(j, i, model.ChannelResponsiveness, 1*sj)
}

// processFail applies the symmetric relation penalty for a failed
// (attempted, not refused) interaction.
func (e *Engine) processFail(i, j int) {
	si := e.state.Sensitivity(i)
	sj := e.state.Sensitivity(j)

	e.addR(i, j, model.ChannelUtility, -0.5*si)
	e.addR(i, j, model.ChannelAffinity, -0.5*si)
	e.addR(i, j, model.ChannelTrust, -2*si)
	e.addR(i, j, model.ChannelResponsiveness, 0.5*si)

	e.addR(j, i, model.ChannelUtility, -0.5*sj)
	e.addR(j, i, model.ChannelAffinity, -0.5*sj)
	e.addR(j, i, model.ChannelTrust, -2*sj)
	e.addR(j, i, model.ChannelResponsiveness, 0.5*sj)
}

// processRefusal applies the asymmetric relation penalty when j
// refuses an interaction initiated by i: i's view of j takes the
// larger hit (rejection stings the initiator), j's view of i takes a
// smaller one.
func (e *Engine) processRefusal(i, j int) {
	si := e.state.Sensitivity(i)
	sj := e.state.Sensitivity(j)

	e.addR(i, j, model.ChannelUtility, -0.5*si)
	e.addR(i, j, model.ChannelAffinity, -1.5*si)
	e.addR(i, j, model.ChannelResponsiveness, -2*si)

	e.addR(j, i, model.ChannelAffinity, -0.5*sj)
	e.addR(j, i, model.ChannelResponsiveness, -1*sj)
}

// addR adds delta to i's relation toward j on channel k and clamps.
func (e *Engine) addR(i, j int, k model.RelationChannel, delta float64) {
	e.state.setR(i, j, k, clampRelation(e.state.R(i, j, k)+delta))
}
