// Copyright 2026 Laborlink Labs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


// eventgen seeds a local event log with synthetic sessions so the learn
// command has something to mine during development.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"iter"
	"log/slog"
	"os"
	"time"

	"github.com/laborlink/matchcore"
	"github.com/laborlink/matchcore/catalog"
	"github.com/laborlink/matchcore/core"
	"github.com/laborlink/matchcore/storage/badger"
)

var situations = []string{
	"월급이 두 달째 밀렸고 대표가 다음 달에 준다고만 합니다.",
	"회사가 갑자기 문을 닫아서 퇴직금을 못 받았어요.",
	"팀장이 회의 때마다 저를 공개적으로 모욕합니다.",
	"출근길에 빙판에서 넘어져 다리가 부러졌습니다.",
	"갑자기 내일부터 나오지 말라는 통보를 받았습니다.",
	"근로계약서에 수습 기간 급여가 너무 낮게 적혀 있어요.",
	"야근 수당을 한 번도 받아본 적이 없습니다.",
	"회사가 폐업 절차에 들어가서 체당금을 알아보고 있습니다.",
	"권고사직을 거부했더니 부서를 옮기라고 합니다.",
	"직원이 10명을 넘어서 취업규칙을 만들어야 할 것 같습니다.",
	"급여 계산이 너무 복잡해져서 맡기고 싶습니다.",
	"새 직원 4대보험 신고를 깜빡했는데 어떻게 하나요?",
}

var (
	dbPath   = flag.String("db", "./data/events", "BadgerDB directory for the event log")
	srcFile  = flag.String("src", "", "file of situation texts, one per line")
	sessions = flag.Int("sessions", 100, "number of sessions to generate")
)

func init() {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	slog.SetDefault(slog.New(handler))
	flag.Parse()
}

// linesFromFile returns an iterator over lines in a file.
func linesFromFile(filename string) (iter.Seq[string], error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}

	return func(yield func(string) bool) {
		defer f.Close()
		scanner := bufio.NewScanner(f)
		for scanner.Scan() {
			if !yield(scanner.Text()) {
				return
			}
		}
	}, nil
}

// linesFromSlice returns an iterator over a slice of strings.
func linesFromSlice(lines []string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, line := range lines {
			if !yield(line) {
				return
			}
		}
	}
}

// sessionEvents builds one synthetic session for a situation text. The
// router supplies the offered options; every third session clicks a
// different option than it selected so extraction sees rejected sessions
// too.
func sessionEvents(router *matchcore.Router, index int, text string) []*core.SessionEvent {
	sessionId := fmt.Sprintf("session-%04d", index)
	selection := router.Pick(text)
	offered := []string{selection.Service}
	if selection.Service != catalog.GenericService {
		offered = append(offered, catalog.GenericService)
	}

	base := time.Now().UTC().Add(-time.Duration(index) * time.Minute)
	events := []*core.SessionEvent{
		{
			SessionId: sessionId,
			Step:      1,
			Audience:  selection.Audience,
			Payload:   core.SituationSubmitted{Text: text},
			CreatedAt: base,
		},
		{
			SessionId: sessionId,
			Step:      2,
			Audience:  selection.Audience,
			Payload:   core.OptionsGenerated{Services: offered},
			CreatedAt: base.Add(2 * time.Second),
		},
	}

	selected := selection.Service
	if index%3 == 2 {
		// Simulate a user who walks away from the recommendation.
		selected = "외부 기관 안내"
	}
	events = append(events, &core.SessionEvent{
		SessionId: sessionId,
		Step:      3,
		Audience:  selection.Audience,
		Payload:   core.OptionSelected{Service: selected},
		CreatedAt: base.Add(5 * time.Second),
	})

	if index%2 == 0 {
		events = append(events, &core.SessionEvent{
			SessionId: sessionId,
			Step:      4,
			Audience:  selection.Audience,
			Payload:   core.OptionClicked{Service: selected},
			CreatedAt: base.Add(8 * time.Second),
		})
	}
	return events
}

func main() {
	router, err := matchcore.NewRouter()
	if err != nil {
		panic(err)
	}

	backend, err := badger.OpenBackend(*dbPath, false)
	if err != nil {
		panic(err)
	}
	defer backend.Close()

	repo, err := badger.NewEventRepository(backend)
	if err != nil {
		panic(err)
	}
	defer repo.Close()

	var source iter.Seq[string]
	if *srcFile != "" {
		source, err = linesFromFile(*srcFile)
		if err != nil {
			panic(err)
		}
	} else {
		source = linesFromSlice(situations)
	}

	var texts []string
	for line := range source {
		if line != "" {
			texts = append(texts, line)
		}
	}
	if len(texts) == 0 {
		panic("no situation texts to seed from")
	}

	ctx := context.Background()
	written := 0
	for i := 0; i < *sessions; i++ {
		events := sessionEvents(router, i, texts[i%len(texts)])
		if _, err := repo.AddEvents(ctx, events...); err != nil {
			panic(err)
		}
		written += len(events)
	}

	slog.Info("seeded event log", "sessions", *sessions, "events", written, "db", *dbPath)
}
