package main

import (
	"errors"
	"testing"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/floodit/internal/config"
	"github.com/vovakirdan/floodit/internal/games/floodit/flood"
)

// newBoardFlagsCmd registers the play board flags on a throwaway command.
func newBoardFlagsCmd(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	t.Cleanup(func() {
		flagSize, flagColors = 0, 0
		flagPlane, flagTorus, flagOrthogonal, flagDiagonal = false, false, false, false
	})

	cmd := &cobra.Command{Use: "play"}
	cmd.Flags().IntVar(&flagSize, "size", 0, "")
	cmd.Flags().IntVar(&flagColors, "colors", 0, "")
	cmd.Flags().BoolVar(&flagPlane, "plane", false, "")
	cmd.Flags().BoolVar(&flagTorus, "torus", false, "")
	cmd.Flags().BoolVar(&flagOrthogonal, "orthogonal", false, "")
	cmd.Flags().BoolVar(&flagDiagonal, "diagonal", false, "")
	if err := cmd.Flags().Parse(args); err != nil {
		t.Fatalf("Parse(%v) failed: %v", args, err)
	}
	return cmd
}

func TestApplyBoardFlags(t *testing.T) {
	torusDiagonal := config.BoardConfig{Size: 14, Colors: 6, Topology: flood.TopologyTorus, Adjacency: flood.AdjacencyDiagonal}

	tests := []struct {
		name    string
		args    []string
		board   config.BoardConfig
		want    config.BoardConfig
		wantErr error
	}{
		{"no flags keep config", nil, torusDiagonal, torusDiagonal, nil},
		{"plane implies not torus", []string{"--plane"}, torusDiagonal,
			config.BoardConfig{Size: 14, Colors: 6, Topology: flood.TopologyPlane, Adjacency: flood.AdjacencyDiagonal}, nil},
		{"torus false means plane", []string{"--torus=false"}, torusDiagonal,
			config.BoardConfig{Size: 14, Colors: 6, Topology: flood.TopologyPlane, Adjacency: flood.AdjacencyDiagonal}, nil},
		{"orthogonal and size", []string{"--orthogonal", "--size", "20"}, torusDiagonal,
			config.BoardConfig{Size: 20, Colors: 6, Topology: flood.TopologyTorus, Adjacency: flood.AdjacencyOrthogonal}, nil},
		{"size clamped", []string{"--size", "3", "--colors", "12"}, torusDiagonal,
			config.BoardConfig{Size: config.MinBoardSize, Colors: config.MaxColors, Topology: flood.TopologyTorus, Adjacency: flood.AdjacencyDiagonal}, nil},
		{"plane and torus", []string{"--plane", "--torus"}, torusDiagonal, torusDiagonal, flood.ErrInvalidTopology},
		{"neither adjacency", []string{"--orthogonal=false", "--diagonal=false"}, torusDiagonal, torusDiagonal, flood.ErrInvalidTopology},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cmd := newBoardFlagsCmd(t, tc.args...)
			b := tc.board

			err := applyBoardFlags(cmd, &b)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("applyBoardFlags() error = %v, expected %v", err, tc.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("applyBoardFlags() failed: %v", err)
			}
			if b != tc.want {
				t.Errorf("board = %+v, expected %+v", b, tc.want)
			}
		})
	}
}

func TestBoardFlagsChanged(t *testing.T) {
	if boardFlagsChanged(newBoardFlagsCmd(t)) {
		t.Error("no board flags should report unchanged")
	}
	if !boardFlagsChanged(newBoardFlagsCmd(t, "--plane")) {
		t.Error("--plane should count as a board flag")
	}
}
