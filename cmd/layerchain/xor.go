package main

import (
	"flag"
	"fmt"
	"io"
	"math/rand"

	"github.com/born-ml/layerchain/matrix"
	"github.com/born-ml/layerchain/nn"
	"github.com/born-ml/layerchain/optim"
)

// sample is one training pair.
type sample struct {
	x, y *matrix.Matrix
}

func xorSamples() []sample {
	col := func(v ...float32) *matrix.Matrix { return matrix.FromVector(v) }
	return []sample{
		{col(0, 0), col(0)},
		{col(0, 1), col(1)},
		{col(1, 0), col(1)},
		{col(1, 1), col(0)},
	}
}

func runXOR(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("xor", flag.ContinueOnError)
	fs.SetOutput(out)
	epochs := fs.Int("epochs", 2000, "Number of training epochs (one batch of 4 samples each)")
	hidden := fs.Int("hidden", 4, "Width of the hidden layer")
	lr := fs.Float64("lr", 0, "Learning rate (0 = rule default)")
	ruleName := fs.String("rule", "adam", "Learning rule: adam, adamax or sgd")
	activation := fs.String("activation", "tanh", "Hidden activation: tanh, rectifier or softplus")
	seed := fs.Int64("seed", 1, "Seed for weight initialization")
	every := fs.Int("every", 500, "Report the loss every N epochs (0 = only at the end)")
	load := fs.String("load", "", "Load parameters from this file before training")
	save := fs.String("save", "", "Save parameters to this file after training")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *hidden <= 0 {
		return fmt.Errorf("xor: -hidden must be positive, got %d", *hidden)
	}

	newRule, err := ruleFactory(*ruleName, float32(*lr))
	if err != nil {
		return err
	}
	act, err := activationLayer(*activation, *hidden)
	if err != nil {
		return err
	}

	rng := rand.New(rand.NewSource(*seed))
	net, err := nn.NewNetwork(
		nn.NewInput(2),
		nn.NewWeight(*hidden, newRule(), rng),
		nn.NewBias(*hidden, newRule(), rng),
		act,
		nn.NewWeight(1, newRule(), rng),
		nn.NewBias(1, newRule(), rng),
	)
	if err != nil {
		return fmt.Errorf("xor: build network: %w", err)
	}

	if *load != "" {
		if err := net.LoadFile(*load); err != nil {
			return fmt.Errorf("xor: %w", err)
		}
		fmt.Fprintf(out, "Loaded parameters from %s\n", *load)
	}

	samples := xorSamples()
	fmt.Fprintf(out, "Training 2-%d-1 network (%s, %s) for %d epochs\n", *hidden, *activation, *ruleName, *epochs)
	for epoch := 1; epoch <= *epochs; epoch++ {
		loss, err := trainEpoch(net, samples)
		if err != nil {
			return fmt.Errorf("xor: epoch %d: %w", epoch, err)
		}
		if epoch == *epochs || (*every > 0 && epoch%*every == 0) {
			fmt.Fprintf(out, "Epoch %5d/%d: Loss=%.6f\n", epoch, *epochs, loss)
		}
	}

	fmt.Fprintln(out, "Predictions:")
	for _, s := range samples {
		if err := net.ProcessInput(s.x); err != nil {
			return fmt.Errorf("xor: predict: %w", err)
		}
		fmt.Fprintf(out, "  %v xor %v -> %.4f (want %v)\n",
			s.x.At(0, 0), s.x.At(1, 0), net.Output().At(0, 0), s.y.At(0, 0))
	}

	if *save != "" {
		if err := net.SaveFile(*save); err != nil {
			return fmt.Errorf("xor: %w", err)
		}
		fmt.Fprintf(out, "Saved parameters to %s\n", *save)
	}
	return nil
}

// trainEpoch runs every sample through the network as one batch and returns
// the mean loss.
func trainEpoch(net *nn.Network, samples []sample) (float32, error) {
	var total float32
	for _, s := range samples {
		if err := net.ProcessInput(s.x); err != nil {
			return 0, err
		}
		loss, grad, err := nn.MSELoss(net.Output(), s.y)
		if err != nil {
			return 0, err
		}
		if err := net.ProcessError(grad); err != nil {
			return 0, err
		}
		total += loss
	}
	if err := net.UpdateParameters(); err != nil {
		return 0, err
	}
	return total / float32(len(samples)), nil
}

// ruleFactory returns a constructor for the named rule. Each parameterized
// layer needs its own instance.
func ruleFactory(name string, lr float32) (func() optim.Rule, error) {
	switch name {
	case "adam":
		return func() optim.Rule { return optim.NewAdam(optim.AdamConfig{LR: lr}) }, nil
	case "adamax":
		return func() optim.Rule { return optim.NewAdaMax(optim.AdaMaxConfig{LR: lr}) }, nil
	case "sgd":
		return func() optim.Rule { return optim.NewSGD(optim.SGDConfig{LR: lr, Momentum: 0.9}) }, nil
	default:
		return nil, fmt.Errorf("xor: unknown rule %q", name)
	}
}

func activationLayer(name string, size int) (nn.Layer, error) {
	switch name {
	case "tanh":
		return nn.NewTanh(size), nil
	case "rectifier", "relu":
		return nn.NewRectifier(size), nil
	case "softplus":
		return nn.NewSoftplus(size), nil
	default:
		return nil, fmt.Errorf("xor: unknown activation %q", name)
	}
}
