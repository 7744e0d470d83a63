package pun

import (
	"context"
	"fmt"

	"github.com/heartmarshall/punsmith/internal/domain"
	"github.com/heartmarshall/punsmith/pkg/ctxutil"
)

// Stage is a step of one generation run.
type Stage string

const (
	StageInit            Stage = "INIT"
	StageExpanding       Stage = "EXPANDING"
	StageRanking         Stage = "RANKING"
	StageTryingCandidate Stage = "TRYING_CANDIDATE"
	StageSuccess         Stage = "SUCCESS"
	StageExhausted       Stage = "EXHAUSTED"
)

func (s Stage) String() string { return string(s) }

// Phase is the candidate list a riddle was found in.
type Phase string

const (
	PhaseNone       Phase = ""
	PhaseDirect     Phase = "direct"
	PhaseSimilarity Phase = "similarity"
	PhaseUntargeted Phase = "untargeted"
)

// Result describes one generation run. A run that finds nothing ends in
// StageExhausted with Found false; that is not an error.
type Result struct {
	Theme  string
	Found  bool
	Riddle domain.Riddle
	Stage  Stage
	Phase  Phase

	Related  []string
	Direct   int
	Ranked   int
	Examined int
	Attempts int
	Skipped  map[SkipReason]int
}

// Generate builds a riddle around theme. An empty theme runs untargeted
// generation over every compound. The only error is ctx's.
func (s *Service) Generate(ctx context.Context, theme string) (Result, error) {
	theme = domain.NormalizeText(theme)
	if theme == "" {
		return s.GenerateAny(ctx)
	}

	res := newResult(theme)

	s.enter(&res, StageExpanding)
	res.Related = s.RelatedWords(theme)
	direct := s.DirectMatches(theme, res.Related)
	res.Direct = len(direct)

	if len(direct) > 0 {
		s.enter(&res, StageTryingCandidate)
		found, err := s.try(ctx, &res, PhaseDirect, head(direct, s.cfg.DirectLimit))
		if err != nil || found {
			return s.finish(ctx, res, err)
		}
	}

	s.enter(&res, StageRanking)
	ranked, examined, err := s.Rank(ctx, theme, res.Related)
	res.Examined = examined
	if err != nil {
		return s.finish(ctx, res, fmt.Errorf("rank candidates: %w", err))
	}
	res.Ranked = len(ranked)

	candidates := make([]domain.Compound, 0, min(len(ranked), s.cfg.AttemptCap))
	for _, sc := range head(ranked, s.cfg.AttemptCap) {
		candidates = append(candidates, sc.Compound)
	}

	s.enter(&res, StageTryingCandidate)
	_, err = s.try(ctx, &res, PhaseSimilarity, candidates)
	return s.finish(ctx, res, err)
}

// GenerateAny tries every compound in enumeration order with no cap and
// returns the first riddle that assembles.
func (s *Service) GenerateAny(ctx context.Context) (Result, error) {
	res := newResult("")
	compounds := s.lex.Compounds()
	res.Examined = len(compounds)

	s.enter(&res, StageTryingCandidate)
	_, err := s.try(ctx, &res, PhaseUntargeted, compounds)
	return s.finish(ctx, res, err)
}

func newResult(theme string) Result {
	return Result{
		Theme:   theme,
		Stage:   StageInit,
		Skipped: make(map[SkipReason]int),
	}
}

// try assembles candidates in order, at most AttemptCap of them, and stops
// at the first success. The untargeted phase has no cap.
func (s *Service) try(ctx context.Context, res *Result, phase Phase, candidates []domain.Compound) (bool, error) {
	if phase != PhaseUntargeted {
		candidates = head(candidates, s.cfg.AttemptCap)
	}

	for _, c := range candidates {
		if err := ctx.Err(); err != nil {
			return false, err
		}
		res.Attempts++

		riddle, reason := s.assemble(c)
		if reason != "" {
			res.Skipped[reason]++
			s.log.Debug("candidate skipped", "compound", c.Lemma, "reason", reason)
			continue
		}

		res.Found = true
		res.Riddle = riddle
		res.Phase = phase
		return true, nil
	}
	return false, nil
}

func (s *Service) enter(res *Result, stage Stage) {
	s.log.Debug("stage", "theme", res.Theme, "from", res.Stage, "to", stage)
	res.Stage = stage
}

func (s *Service) finish(ctx context.Context, res Result, err error) (Result, error) {
	log := s.log
	if runID, ok := ctxutil.RunIDFromCtx(ctx); ok {
		log = log.With("run_id", runID)
	}

	if err != nil {
		log.Warn("generation interrupted",
			"theme", res.Theme,
			"stage", res.Stage,
			"attempts", res.Attempts,
			"error", err,
		)
		return res, err
	}

	if res.Found {
		s.enter(&res, StageSuccess)
		log.Info("pun generated",
			"theme", res.Theme,
			"phase", res.Phase,
			"compound", res.Riddle.Compound.Lemma,
			"attempts", res.Attempts,
		)
		return res, nil
	}

	s.enter(&res, StageExhausted)
	log.Info("no pun found",
		"theme", res.Theme,
		"attempts", res.Attempts,
		"examined", res.Examined,
	)
	return res, nil
}
