package main

import (
	"github.com/rs/zerolog/log"

	dao "github.com/alceccentric/anilist-taste/dao"
	orch "github.com/alceccentric/anilist-taste/orch"
	param "github.com/alceccentric/anilist-taste/param"
	"github.com/alceccentric/anilist-taste/service"
)

const (
	numOfListScorers = 3
)

func main() {
	params := param.GetParams()
	apiClient := dao.NewAniListAccessor()
	reportSvc := service.NewReportService(params.OutDir)

	tasteOrch := orch.NewTasteOrchestrator(apiClient, reportSvc, numOfListScorers)
	if err := tasteOrch.Run(params.Username, params.Kind); err != nil {
		log.Fatal().Err(err).Msgf("Failed to score lists for user %s", params.Username)
	}
}
