// Package spectral computes continuous Fourier power spectra of 2D point
// sets on a centered square frequency grid.
//
// The transform is a direct evaluation of the non-uniform continuous Fourier
// sum at every grid frequency (O(resolution² · points) per call), not an
// FFT: point coordinates are arbitrary reals and the frequency step is not
// tied to any power-of-two layout. [Transform] tiles the grid and fans the
// tiles out across a worker pool. [BinnedSpectrum] offers an approximate
// FFT-based alternative for integer frequencies.
package spectral
