// Package services contains stateless domain services operating on the
// order model:
//
//   - PriceEstimator: pure cost estimation from a Specification
//   - ProgressProjector: the single place that derives progress views
//     (percent, step index, stage labels) from an order snapshot
//   - DeliveryDispatcher: validation and normalization of the three
//     delivery-mode payloads into a DeliveryInfo value
//
// All services are value types with no dependencies; construct them with
// their New functions and call them from application handlers.
package services
