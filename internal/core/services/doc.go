// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// Dataframe work goes through gota, statistics through gonum and
// montanaflynn/stats.
package services
