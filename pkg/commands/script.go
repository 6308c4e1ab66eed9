package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/datatug/vfstug/pkg/items"
	"gopkg.in/yaml.v3"
)

// Step is one entry of a YAML command script. Any id field may hold a
// reference of the form $N, meaning the first id produced by step N.
type Step struct {
	Op       string   `yaml:"op"`
	ID       string   `yaml:"id,omitempty"`
	IDs      []string `yaml:"ids,omitempty"`
	Name     string   `yaml:"name,omitempty"`
	Kind     string   `yaml:"kind,omitempty"`
	Size     int64    `yaml:"size,omitempty"`
	Parent   string   `yaml:"parent,omitempty"`
	Target   string   `yaml:"target,omitempty"`
	Additive bool     `yaml:"additive,omitempty"`
}

type Script struct {
	Steps []Step
}

var yamlNewDecoder = func(r io.Reader) *yaml.Decoder {
	return yaml.NewDecoder(r)
}

// ParseScript reads a YAML list of steps and checks that every op is known
// and every reference points to an earlier step.
func ParseScript(r io.Reader) (*Script, error) {
	var steps []Step
	if err := yamlNewDecoder(r).Decode(&steps); err != nil {
		if errors.Is(err, io.EOF) {
			return &Script{}, nil
		}
		return nil, fmt.Errorf("failed to decode script: %w", err)
	}
	for i, step := range steps {
		if _, ok := stepBuilders[step.Op]; !ok {
			return nil, fmt.Errorf("step %d: %w: unknown op %q", i+1, ErrInvalidCommand, step.Op)
		}
		for _, ref := range step.refs() {
			n, isRef, err := parseRef(ref)
			if err != nil {
				return nil, fmt.Errorf("step %d: %w", i+1, err)
			}
			if isRef && n > i {
				return nil, fmt.Errorf("step %d: %w: %s refers to a later step", i+1, ErrInvalidCommand, ref)
			}
		}
	}
	return &Script{Steps: steps}, nil
}

func (st Step) refs() []string {
	refs := []string{st.ID, st.Parent, st.Target}
	return append(refs, st.IDs...)
}

// parseRef reports whether s is a $N reference and returns N.
func parseRef(s string) (int, bool, error) {
	if !strings.HasPrefix(s, "$") {
		return 0, false, nil
	}
	n, err := strconv.Atoi(s[1:])
	if err != nil || n < 1 {
		return 0, true, fmt.Errorf("%w: bad reference %q", ErrInvalidCommand, s)
	}
	return n, true, nil
}

type resolver func(string) (string, error)

var stepBuilders = map[string]func(Step, resolver) (Command, error){
	"navigate": func(st Step, resolve resolver) (Command, error) {
		id, err := resolve(st.ID)
		return Navigate{FolderID: id}, err
	},
	"select": func(st Step, resolve resolver) (Command, error) {
		id, err := resolve(st.ID)
		return Select{ID: id, Additive: st.Additive}, err
	},
	"select_all": func(Step, resolver) (Command, error) {
		return SelectAll{}, nil
	},
	"clear_selection": func(Step, resolver) (Command, error) {
		return ClearSelection{}, nil
	},
	"create": func(st Step, resolve resolver) (Command, error) {
		parent, err := resolve(st.Parent)
		kind := items.Kind(st.Kind)
		if kind == "" {
			kind = items.KindFile
		}
		return Create{ItemName: st.Name, Kind: kind, ParentID: parent, Size: st.Size}, err
	},
	"rename": func(st Step, resolve resolver) (Command, error) {
		id, err := resolve(st.ID)
		return Rename{ID: id, NewName: st.Name}, err
	},
	"move": func(st Step, resolve resolver) (Command, error) {
		ids, target, err := resolveTargeted(st, resolve)
		return Move{IDs: ids, TargetFolderID: target}, err
	},
	"copy_into": func(st Step, resolve resolver) (Command, error) {
		ids, target, err := resolveTargeted(st, resolve)
		return CopyInto{IDs: ids, TargetFolderID: target}, err
	},
	"delete": func(st Step, resolve resolver) (Command, error) {
		ids, err := resolveAll(st.IDs, resolve)
		return Delete{IDs: ids}, err
	},
	"cut": func(st Step, resolve resolver) (Command, error) {
		ids, err := resolveAll(st.IDs, resolve)
		return Cut{IDs: ids}, err
	},
	"copy": func(st Step, resolve resolver) (Command, error) {
		ids, err := resolveAll(st.IDs, resolve)
		return CopyToClipboard{IDs: ids}, err
	},
	"paste": func(Step, resolver) (Command, error) {
		return Paste{}, nil
	},
}

func resolveTargeted(st Step, resolve resolver) ([]string, string, error) {
	ids, err := resolveAll(st.IDs, resolve)
	if err != nil {
		return nil, "", err
	}
	target, err := resolve(st.Target)
	return ids, target, err
}

func resolveAll(refs []string, resolve resolver) ([]string, error) {
	ids := make([]string, 0, len(refs))
	for _, ref := range refs {
		id, err := resolve(ref)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// Run dispatches the steps in order and stops at the first failure.
// It returns the outcomes of the steps that were applied.
func (s *Script) Run(ctx context.Context, d *Dispatcher) ([]Outcome, error) {
	outcomes := make([]Outcome, 0, len(s.Steps))
	resolve := func(ref string) (string, error) {
		n, isRef, err := parseRef(ref)
		if err != nil || !isRef {
			return ref, err
		}
		if n > len(outcomes) || len(outcomes[n-1].IDs) == 0 {
			return "", fmt.Errorf("%w: %s produced no id", ErrInvalidCommand, ref)
		}
		return outcomes[n-1].IDs[0], nil
	}
	for i, step := range s.Steps {
		build, ok := stepBuilders[step.Op]
		if !ok {
			return outcomes, fmt.Errorf("step %d: %w: unknown op %q", i+1, ErrInvalidCommand, step.Op)
		}
		cmd, err := build(step, resolve)
		if err != nil {
			return outcomes, fmt.Errorf("step %d (%s): %w", i+1, step.Op, err)
		}
		outcome, err := d.Dispatch(ctx, cmd)
		if err != nil {
			return outcomes, fmt.Errorf("step %d (%s): %w", i+1, step.Op, err)
		}
		outcomes = append(outcomes, outcome)
	}
	return outcomes, nil
}
