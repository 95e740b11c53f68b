// Package workshops is the recorded-lessons portal: the lesson catalog, a mock login
// kept in a key-value store and per-visitor lesson progress.
package workshops

import (
	"errors"
	"fmt"
)

var ErrLessonNotFound = errors.New("lesson not found")

type Lesson struct {
	Id              string `json:"id"`
	Title           string `json:"title"`
	Summary         string `json:"summary"`
	VideoId         string `json:"videoId"`
	VideoTitle      string `json:"videoTitle"`
	Presenter       string `json:"presenter"`
	DurationSeconds int    `json:"durationSeconds"`
	PlaylistId      string `json:"playlistId,omitempty"`
}

type Topic struct {
	Id       string `json:"id"`
	Title    string `json:"title"`
	LessonId string `json:"lessonId"`
}

func Lessons() []Lesson {
	return []Lesson{
		{
			Id:              "lesson-1",
			Title:           "Aula 01 - Recrutamento e Seleção",
			Summary:         "Construa a base do processo entendendo etapas, papéis e indicadores essenciais para recrutar bem.",
			VideoId:         "5zuZsvK6mkA",
			VideoTitle:      "Curso de Recrutamento e Seleção - Aula 11: Roteiro da Entrevista",
			Presenter:       "Prime Cursos do Brasil",
			DurationSeconds: 193,
			PlaylistId:      "PLFKhhNd35zq8PMt964NDjvLeG3-UlVYSN",
		},
		{
			Id:              "lesson-2",
			Title:           "Aula 02 - Planejamento da Contratação",
			Summary:         "Mapeie perfis ideais, defina cronogramas e organize materiais de entrevista com foco no resultado.",
			VideoId:         "eaqvm7PYhhQ",
			VideoTitle:      "Gestão de Recursos Humanos: 6 principais atividades do RH | RH Academy",
			Presenter:       "RH Academy",
			DurationSeconds: 1000,
		},
		{
			Id:              "lesson-3",
			Title:           "Aula 03 - Atração de Candidatos",
			Summary:         "Aprenda a divulgar vagas, apresentar cultura e criar mensagens que atraiam profissionais alinhados.",
			VideoId:         "In-vSx9YT5k",
			VideoTitle:      "Recrutamento e Seleção | Como atrair os melhores candidatos",
			Presenter:       "Você Recrutador",
			DurationSeconds: 263,
		},
		{
			Id:              "lesson-4",
			Title:           "Aula 04 - Escolha do Candidato",
			Summary:         "Guie entrevistas, testes e comparações com critérios objetivos para tomar a melhor decisão.",
			VideoId:         "MBjqzpU8n54",
			VideoTitle:      "Quais Perguntas Fazer em uma ENTREVISTA de EMPREGO ?",
			Presenter:       "Aline Meireles",
			DurationSeconds: 495,
		},
		{
			Id:              "lesson-5",
			Title:           "Aula 05 - Integração e Acompanhamento",
			Summary:         "Crie experiências de onboarding, acompanhamento dos primeiros dias e indicadores de sucesso.",
			VideoId:         "eUgd3uhCGY8",
			VideoTitle:      "COMO FAZER UM TREINAMENTO DE INTEGRAÇÃO NA PRÁTICA ?",
			Presenter:       "Aline Meireles",
			DurationSeconds: 368,
		},
		{
			Id:              "lesson-6",
			Title:           "Aula 06 - Onboarding Estratégico",
			Summary:         "Conecte novas contratações aos objetivos da empresa e fortaleça a jornada de desenvolvimento contínuo.",
			VideoId:         "_QP8O01017c",
			VideoTitle:      "Onboarding - O que é e como colocar em prática | RH Academy",
			Presenter:       "RH Academy",
			DurationSeconds: 849,
		},
	}
}

func Topics() []Topic {
	return []Topic{
		{Id: "topic-1", Title: "Recrutamento e Seleção", LessonId: "lesson-1"},
		{Id: "topic-2", Title: "Planejamento da Contratação", LessonId: "lesson-2"},
		{Id: "topic-3", Title: "Atração de Candidatos", LessonId: "lesson-3"},
		{Id: "topic-4", Title: "Escolha do Candidato", LessonId: "lesson-4"},
		{Id: "topic-5", Title: "Integração e Acompanhamento", LessonId: "lesson-5"},
		{Id: "topic-6", Title: "Onboarding Estratégico", LessonId: "lesson-6"},
	}
}

func FindLesson(id string) (Lesson, error) {
	for _, lesson := range Lessons() {
		if lesson.Id == id {
			return lesson, nil
		}
	}
	return Lesson{}, ErrLessonNotFound
}

// DurationLabel formats seconds as "3m 13s", or "1h 02m 05s" from one hour up.
func DurationLabel(seconds int) string {
	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	secs := seconds % 60
	if hours > 0 {
		return fmt.Sprintf("%dh %02dm %02ds", hours, minutes, secs)
	}
	return fmt.Sprintf("%dm %02ds", minutes, secs)
}
