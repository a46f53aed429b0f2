/*
Package bayesglm implements the likelihood core of a Bayesian generalized
linear model (GLM) engine: per-family log-likelihoods for Gaussian, Gamma,
inverse Gaussian and Beta outcomes, family-scoped link tables, the
identifiability shifts that keep a linear predictor inside its link's
domain, and posterior predictive simulation.

The package is called once per density evaluation by an external sampler.
All evaluation entry points are pure with respect to the engine state, so
independent chains may evaluate the same engine concurrently.
*/
package bayesglm
