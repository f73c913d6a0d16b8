package main

import (
	"context"
	"flag"
	"io"
	"os"

	"github.com/google/subcommands"
	"github.com/iwvelando/credit-portfolio-sim/pkg/products"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

type productsCmd struct{}

func (*productsCmd) Name() string { return "products" }

func (*productsCmd) Synopsis() string { return "prints the per-product distribution table" }

func (*productsCmd) Usage() string {
	return `products

  Prints the weights and draw parameters used for each credit product.
`
}

func (*productsCmd) SetFlags(*flag.FlagSet) {}

func (*productsCmd) Execute(context.Context, *flag.FlagSet, ...interface{}) subcommands.ExitStatus {
	printProducts(os.Stdout)
	return subcommands.ExitSuccess
}

func printProducts(w io.Writer) {
	p := message.NewPrinter(language.English)
	_, _ = p.Fprintf(w, "Product     | Weight | Principal (median, sigma, clip) | Rate a.m. (mean, sigma, clip) | Term | Default p.a. (mean, sigma, clip) | Recovery (mean, sigma, clip)\n")
	for _, pr := range products.Catalog {
		_, _ = p.Fprintf(w, "%-11s | %.2f | %.0f, %.1f, [%.0f, %.0f] | %.3f, %.3f, [%.3f, %.3f] | %d-%d | %.3f, %.3f, [%.3f, %.3f] | %.2f, %.2f, [%.2f, %.2f]\n",
			pr.Type, pr.Weight,
			pr.Principal.Median, pr.Principal.Sigma, pr.Principal.Min, pr.Principal.Max,
			pr.InterestRate.Mean, pr.InterestRate.Sigma, pr.InterestRate.Min, pr.InterestRate.Max,
			pr.Term.Min, pr.Term.Max,
			pr.DefaultProb.Mean, pr.DefaultProb.Sigma, pr.DefaultProb.Min, pr.DefaultProb.Max,
			pr.RecoveryRate.Mean, pr.RecoveryRate.Sigma, pr.RecoveryRate.Min, pr.RecoveryRate.Max)
	}
}
