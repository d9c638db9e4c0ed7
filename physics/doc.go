// Package physics defines the contract between the behavior layer and a rigid
// body engine: bodies, trigger volumes (sensors), collision groups and the
// per-tick lifecycle hooks the engine dispatches.
//
// One engine tick runs, in order: OnPreUpdate for every body and sensor, then
// integration and collision handling (OnDetection / OnResolution, dispatched
// synchronously), then OnPostUpdate. Bodies and sensors destroyed while a tick
// is running stay valid until the tick ends.
package physics
