// Package solubility models how much solute a solvent can hold as a
// function of temperature.
//
// The package defines the fundamental types of the simulator:
//
//   - [Curve]: temperature → grams of solute per 100 g of water
//   - [Substance]: a named solute with its curve and precipitate tint
//   - [Table]: the fixed set of substances known at startup
//   - [State] and [Result]: one evaluation of the model
//
// # Example
//
//	table := solubility.DefaultTable()
//	res, err := table.Evaluate(solubility.State{
//	    Substance:   "KNO3",
//	    Temperature: 20,
//	    Solvent:     100,
//	    Solute:      40,
//	})
//	// res.Precipitate ≈ 8.9
//
// # Thread Safety
//
// A [Table] is safe for concurrent reads once all substances have been
// registered. Registration is expected to happen once, at startup.
package solubility
