// Package debug gates diagnostics written to stderr.
//
// A topic is enabled by FORMTREE_DEBUG, a comma separated list of topic
// names ("build,patch", or "all"), or by its own boolean variable such as
// FORMTREE_DEBUG_BUILD=1.
package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
)

type topic uint8

const (
	buildTopic topic = 1 << iota
	parseTopic
	evalTopic
	patchTopic

	allTopics = buildTopic | parseTopic | evalTopic | patchTopic
)

var topicNames = map[string]topic{
	"build": buildTopic,
	"parse": parseTopic,
	"eval":  evalTopic,
	"patch": patchTopic,
	"all":   allTopics,
}

var enabled = topicsFromEnv(os.Getenv)

func topicsFromEnv(getenv func(string) string) topic {
	var res topic
	for _, name := range strings.Split(getenv("FORMTREE_DEBUG"), ",") {
		res |= topicNames[strings.ToLower(strings.TrimSpace(name))]
	}
	for name, t := range topicNames {
		if t == allTopics {
			continue
		}
		b, _ := strconv.ParseBool(getenv("FORMTREE_DEBUG_" + strings.ToUpper(name)))
		if b {
			res |= t
		}
	}
	return res
}

func Build() bool { return enabled&buildTopic != 0 }
func Parse() bool { return enabled&parseTopic != 0 }
func Eval() bool  { return enabled&evalTopic != 0 }
func Patch() bool { return enabled&patchTopic != 0 }

// LogAny writes v to stderr as a line of JSON.
func LogAny(v any) {
	d, err := json.Marshal(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", v)
		return
	}
	os.Stderr.Write(append(d, '\n'))
}
