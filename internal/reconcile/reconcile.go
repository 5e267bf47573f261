// Package reconcile merges execution records, which only carry a process
// display name, with process definitions keyed by identifier, producing one
// usage record per executed process. It performs no I/O.
package reconcile

import (
	"fmt"
	"sort"
	"strings"

	"github.com/anomredux/boomi-du/internal/domain"
)

// Input is the already-loaded data the engine merges.
type Input struct {
	Definitions     map[string]domain.ProcessInfo // identifier -> definition
	DefinitionSizes map[string]int64              // identifier -> definition directory bytes
	Executions      []domain.ExecutionRecord
}

type Options struct {
	// ExactFallback keys unresolved executions by their full display name
	// instead of the reduced hash, so distinct unknown names never share a
	// bucket.
	ExactFallback bool
}

type Result struct {
	Stats []domain.ProcessUsageStats // ordered by process identifier
	// UnknownNames lists, sorted, every display name that matched no definition.
	UnknownNames []string
}

// maxDiagnosticExamples bounds the names quoted by Diagnostic.
const maxDiagnosticExamples = 3

// Diagnostic summarises unresolved names, or returns "" when every execution
// resolved.
func (r Result) Diagnostic() string {
	if len(r.UnknownNames) == 0 {
		return ""
	}
	examples := r.UnknownNames
	suffix := ""
	if len(examples) > maxDiagnosticExamples {
		examples = examples[:maxDiagnosticExamples]
		suffix = "..."
	}
	return fmt.Sprintf("%d process names could not be mapped to an ID: %s%s",
		len(r.UnknownNames), strings.Join(examples, ", "), suffix)
}

// Reconcile builds per-process usage from in. Processes without executions are
// not reported.
func Reconcile(in Input, opts Options) Result {
	index := nameIndex(in.Definitions)
	buckets := make(map[string]*aggregate)
	unknown := make(map[string]struct{})

	for _, e := range in.Executions {
		id, ok := index[e.ProcessName]
		if !ok {
			id = fallbackKey(e.ProcessName, opts)
			unknown[e.ProcessName] = struct{}{}
		}

		agg, seen := buckets[id]
		if !seen {
			agg = &aggregate{}
			if info, known := in.Definitions[id]; known {
				agg.info = info
			} else {
				agg.info = domain.Placeholder(id, e.ProcessName)
			}
			buckets[id] = agg
		}
		agg.add(e)
	}

	for id, size := range in.DefinitionSizes {
		if agg, ok := buckets[id]; ok {
			agg.definitionBytes += size
			continue
		}
		info, ok := in.Definitions[id]
		if !ok {
			info = domain.ProcessInfo{ID: id, Name: domain.NoExecutionsFound, Type: domain.UnknownType}
		}
		buckets[id] = &aggregate{info: info, definitionBytes: size}
	}

	ids := make([]string, 0, len(buckets))
	for id, agg := range buckets {
		if agg.count > 0 {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)

	res := Result{Stats: make([]domain.ProcessUsageStats, 0, len(ids))}
	for _, id := range ids {
		res.Stats = append(res.Stats, buckets[id].finalize())
	}
	for name := range unknown {
		res.UnknownNames = append(res.UnknownNames, name)
	}
	sort.Strings(res.UnknownNames)
	return res
}

// nameIndex maps display names to identifiers. When two definitions share a
// name the one with the greater identifier wins.
func nameIndex(defs map[string]domain.ProcessInfo) map[string]string {
	ids := make([]string, 0, len(defs))
	for id := range defs {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	index := make(map[string]string, len(defs))
	for _, id := range ids {
		if name := defs[id].Name; name != "" {
			index[name] = id
		}
	}
	return index
}

func fallbackKey(name string, opts Options) string {
	if opts.ExactFallback {
		return FallbackPrefix + name
	}
	return FallbackID(name)
}
