// Package pipeline wires resolver, provider, filter, aggregator and writer
// into one sequential run.
//
// All configuration arrives through Params and every external dependency
// through Deps, so a run can be driven with test doubles:
//
//	result, err := pipeline.Run(ctx, pipeline.Params{
//	    Hosts:    []string{"cs.stingray360.com"},
//	    Selector: models.Selector{"S3": models.NewRegionSet("us-east-1")},
//	}, pipeline.Deps{
//	    Resolver: resolver.NewSystem(),
//	    Provider: provider.NewHTTPProvider(provider.DefaultURL, 0, ""),
//	    Writer:   output.NewFileWriter(dir, "", "", ""),
//	})
//
// The output directory is checked before any DNS or HTTP traffic.
package pipeline
