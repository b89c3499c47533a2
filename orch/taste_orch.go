package orch

import (
	"fmt"

	"github.com/google/go-pipeline/pkg/pipeline"
	"github.com/rs/zerolog/log"
	"github.com/tidwall/gjson"

	dao "github.com/alceccentric/anilist-taste/dao"
	model "github.com/alceccentric/anilist-taste/model"
	job "github.com/alceccentric/anilist-taste/orch/job"
	"github.com/alceccentric/anilist-taste/service"
)

// TasteOrchestrator drives one run: fetch the user's tracked lists, score
// each reported list against global averages, and emit the per-list reports.
// The list fetch is a prerequisite for everything, so its failure aborts the
// run; per-list failures only drop the affected list.
type TasteOrchestrator struct {
	apiClient        *dao.AniListAccessor
	reportSvc        *service.ReportService
	numOfListScorers int
}

func NewTasteOrchestrator(apiClient *dao.AniListAccessor, reportSvc *service.ReportService, numOfListScorers int) *TasteOrchestrator {
	return &TasteOrchestrator{
		apiClient:        apiClient,
		reportSvc:        reportSvc,
		numOfListScorers: numOfListScorers,
	}
}

func (orch *TasteOrchestrator) Run(username string, kind model.MediaKind) error {
	lists, err := orch.apiClient.GetMediaLists(username, kind)
	if err != nil {
		return err
	}

	orch.reportSvc.PrintBanner()

	listProducer := pipeline.NewProducer(
		orch.getListProducer(lists),
		pipeline.Name("Extract entries from tracked lists"),
	)

	listScorer := pipeline.NewStage(
		orch.getListScorer(kind),
		pipeline.Name("Fetch global averages and score lists"),
		pipeline.Concurrency(uint(orch.numOfListScorers)),
	)

	listReporter := pipeline.NewStage(
		orch.getListReporter(username, kind),
		pipeline.Name("Persist and print list reports"),
	)

	if err := pipeline.Do(
		listProducer,
		listScorer,
		listReporter,
	); err != nil {
		return fmt.Errorf("failed to run taste pipeline (%w)", err)
	}
	return nil
}

func (orch *TasteOrchestrator) getListProducer(lists []gjson.Result) func(put func(*job.TasteOrchJob)) error {
	return func(put func(*job.TasteOrchJob)) error {
		for _, list := range lists {
			if !service.IsReportedList(list) {
				log.Debug().Msgf("Dropping list %s: not a reported list", list.Get("name").String())
				continue
			}
			ids, userScores := service.ExtractListEntries(list)
			put(&job.TasteOrchJob{
				ListType:   list.Get("name").String(),
				MediaIDs:   ids,
				UserScores: userScores,
			})
		}
		return nil
	}
}

func (orch *TasteOrchestrator) getListScorer(kind model.MediaKind) func(in *job.TasteOrchJob) (*job.TasteOrchJob, error) {
	return func(in *job.TasteOrchJob) (*job.TasteOrchJob, error) {
		data, err := orch.apiClient.GetBatchAverages(in.MediaIDs, kind)
		if err != nil {
			log.Error().Err(err).Msgf("Failed to fetch average scores for list %s, dropping it", in.ListType)
			return in, nil
		}

		avgScores := service.ExtractBatchedAverages(data)
		scored, err := service.Join(in.ListType, in.MediaIDs, in.UserScores, avgScores)
		if err != nil {
			log.Error().Err(err).Msgf("Failed to join scores for list %s, dropping it", in.ListType)
			return in, nil
		}

		in.Scored = &scored
		in.Summary = service.Summarize(scored)
		return in, nil
	}
}

func (orch *TasteOrchestrator) getListReporter(username string, kind model.MediaKind) func(in *job.TasteOrchJob) (*job.TasteOrchJob, error) {
	return func(in *job.TasteOrchJob) (*job.TasteOrchJob, error) {
		if in.Scored == nil {
			return in, nil
		}

		if path, err := orch.reportSvc.WriteCsv(*in.Scored, username, kind); err != nil {
			log.Error().Err(err).Msgf("Failed to write report for list %s", in.ListType)
		} else {
			log.Info().Msgf("Wrote report for list %s to %s", in.ListType, path)
		}

		orch.reportSvc.PrintSummary(in.Summary)
		return in, nil
	}
}
