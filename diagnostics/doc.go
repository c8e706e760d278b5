// Package diagnostics provides chain-quality measures for MCMC output:
// acceptance rates, effective sample size (ESS), efficiency per unit of
// runtime, and constraint adherence.
//
// 🚀 What's inside:
//   - AcceptanceRate — fraction of accepted proposals from a 0/1 flag
//     vector.
//   - ESS — Geyer initial-monotone-sequence estimator on a single
//     scalar chain.
//   - MinESS — the most pessimistic ESS across the columns of a chain.
//   - MinESSPerSecond — cross-chain minimum ESS divided by total
//     runtime, the efficiency score used to compare samplers at equal
//     computational budget.
//   - MaxConstraintViolation — the largest constraint magnitude over
//     every retained state, for checking how tightly a chain hugs the
//     manifold.
//
// All estimators are deterministic functions of their input; they hold
// no state and are safe for concurrent use.
package diagnostics
