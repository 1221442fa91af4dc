// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn_test

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/born-ml/layerchain/matrix"
	"github.com/born-ml/layerchain/nn"
	"github.com/born-ml/layerchain/optim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLayerInterface verifies that every concrete type implements Layer.
func TestLayerInterface(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	tests := []struct {
		name  string
		layer nn.Layer
	}{
		{"Input", nn.NewInput(2)},
		{"Weight", nn.NewWeight(2, optim.NewAdaMax(optim.AdaMaxConfig{}), rng)},
		{"Bias", nn.NewBias(2, optim.NewSGD(optim.SGDConfig{}), rng)},
		{"Rectifier", nn.NewRectifier(2)},
		{"Softplus", nn.NewSoftplus(2)},
		{"Tanh", nn.NewTanh(2)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, 2, tt.layer.Size())
			assert.Nil(t, tt.layer.Prev())
		})
	}
}

func TestPublicAPI_TrainAndPersist(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	build := func() *nn.Network {
		net, err := nn.NewNetwork(
			nn.NewInput(2),
			nn.NewWeight(3, optim.NewAdaMax(optim.AdaMaxConfig{}), rng),
			nn.NewBias(3, optim.NewAdaMax(optim.AdaMaxConfig{}), rng),
			nn.NewRectifier(3),
			nn.NewWeight(1, optim.NewAdaMax(optim.AdaMaxConfig{}), rng),
			nn.NewSoftplus(1),
		)
		require.NoError(t, err)
		return net
	}

	net := build()
	x := matrix.FromVector([]float32{1, -1})
	require.NoError(t, net.ProcessInput(x))

	loss, grad, err := nn.MSELoss(net.Output(), matrix.FromVector([]float32{2}))
	require.NoError(t, err)
	assert.GreaterOrEqual(t, loss, float32(0))
	require.NoError(t, net.ProcessError(grad))
	require.NoError(t, net.UpdateParameters())

	var buf bytes.Buffer
	require.NoError(t, net.Save(&buf))

	restored := build()
	require.NoError(t, restored.Load(&buf))
	require.NoError(t, net.ProcessInput(x))
	require.NoError(t, restored.ProcessInput(x))
	assert.Equal(t, net.Output().Data(), restored.Output().Data())
}

func TestPublicAPI_Errors(t *testing.T) {
	_, err := nn.NewNetwork(nn.NewInput(1), nn.NewInput(1))
	assert.ErrorIs(t, err, nn.ErrInvalidTopology)

	assert.ErrorIs(t, nn.NewTanh(1).ProcessInput(), nn.ErrMissingLink)
}
