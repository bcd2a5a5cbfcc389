package forecast

import (
	"fmt"
	"time"

	"fire-risk-api/internal/models"
	"fire-risk-api/internal/services/risk"
)

var dayNames = map[time.Weekday]string{
	time.Monday:    "Segunda-feira",
	time.Tuesday:   "Terça-feira",
	time.Wednesday: "Quarta-feira",
	time.Thursday:  "Quinta-feira",
	time.Friday:    "Sexta-feira",
	time.Saturday:  "Sábado",
	time.Sunday:    "Domingo",
}

var monthNames = [12]string{
	"Janeiro", "Fevereiro", "Março", "Abril", "Maio", "Junho",
	"Julho", "Agosto", "Setembro", "Outubro", "Novembro", "Dezembro",
}

// Week-fallback ranges, in percent.
var weekRanges = map[string][2]float64{
	models.NeuralNetwork: {30, 70},
	models.KNN:           {28, 70},
	models.RandomForest:  {32, 70},
}

func isDrySeason(month int) bool {
	return month >= 6 && month <= 11
}

// mondayFirst numbers the weekday from Monday=0 to Sunday=6.
func mondayFirst(d time.Weekday) int {
	return (int(d) + 6) % 7
}

func (s *Service) syntheticWeek() []models.WeekPrediction {
	today := s.clock.Now().In(s.loc)
	today = time.Date(today.Year(), today.Month(), today.Day(), 12, 0, 0, 0, s.loc)

	week := make([]models.WeekPrediction, 0, 7)
	for i := 0; i < 7; i++ {
		date := today.AddDate(0, 0, i)

		var predictions models.ModelPredictions
		for _, id := range models.ModelIDs {
			r := weekRanges[id]
			predictions.Set(id, risk.Round(s.gen.Between(r[0], r[1]), 1))
		}
		average := risk.Round(predictions.Mean(), 1)

		dryDays := risk.DefaultDryDaysWetSeason
		if int(date.Month()) >= risk.DrySeasonStartMonth {
			dryDays = risk.DefaultDryDaysDrySeason
		}

		week = append(week, models.WeekPrediction{
			Date:      date.Format(time.DateOnly),
			DayName:   dayNames[date.Weekday()],
			DayOfWeek: mondayFirst(date.Weekday()),
			FeaturesUsed: models.FeaturesUsed{
				DiaSemChuva:  float64(dryDays),
				Precipitacao: risk.DefaultPrecipitacao,
				FRP:          risk.DefaultFRP,
			},
			Predictions:       predictions,
			AveragePrediction: average,
			RiskLevel:         models.SeasonalRiskLevelFor(average / 100),
		})
	}
	return week
}

func (s *Service) syntheticYear() []models.YearPrediction {
	year := s.clock.Now().In(s.loc).Year()

	out := make([]models.YearPrediction, 0, len(monthNames))
	for i, name := range monthNames {
		month := i + 1

		var base, dryDays float64
		if isDrySeason(month) {
			base = s.gen.Between(0.8, 1)
			dryDays = s.gen.Between(30, 80)
		} else {
			base = s.gen.Between(0.3, 0.7)
			dryDays = s.gen.Between(2, 12)
		}

		precipitacao := 0.0
		if month < risk.DrySeasonStartMonth {
			precipitacao = risk.Round(s.gen.Between(0, 5), 1)
		}

		predictions := models.ModelPredictions{
			NeuralNetwork: risk.Round(base, 4),
			KNN:           risk.Round(base+s.gen.Jitter(0.1), 4),
			RandomForest:  risk.Round(base+s.gen.Jitter(0.1), 4),
		}

		out = append(out, models.YearPrediction{
			Month:     month,
			MonthName: name,
			Year:      year,
			Date:      fmt.Sprintf("%d-%02d-15", year, month),
			FeaturesUsed: models.FeaturesUsed{
				DiaSemChuva:  risk.Round(dryDays, 1),
				Precipitacao: precipitacao,
				FRP:          risk.Round(s.gen.Between(2, 10), 1),
			},
			HistoricalData: models.HistoricalSummary{
				RegistrosHistoricos: int(s.gen.Between(100, 1600) + 0.5),
				RiscoMedioHistorico: risk.Round(base, 4),
			},
			Predictions:       predictions,
			AveragePrediction: risk.Round(base, 4),
			RiskLevel:         models.SeasonalRiskLevelFor(base),
		})
	}
	return out
}
