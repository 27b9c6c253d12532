// Package deal implements the brand-deal pipeline.
//
// The service layer owns stage-transition rules and pipeline rollups. It
// depends on the repository interface defined in this package and should
// never import from the api/ handlers. Repository implementations live in
// repository/postgres/.
package deal
