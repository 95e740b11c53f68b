// Package plans serves the pricing page: the payment options, the benefits of the
// plan and the purchase confirmation that hands the visitor over to WhatsApp.
package plans

import (
	"errors"
	"fmt"
	"net/url"
)

const whatsappNumber = "5519992297835"

var ErrPlanNotFound = errors.New("plan not found")

type Option struct {
	Id    string `json:"id"`
	Label string `json:"label"`
	Price string `json:"price"`
	Image string `json:"image"`
}

type BenefitSection struct {
	Title  string   `json:"title"`
	Points []string `json:"points"`
}

type Purchase struct {
	Plan        Option `json:"plan"`
	Message     string `json:"message"`
	WhatsappUrl string `json:"whatsappUrl"`
}

func Options() []Option {
	return []Option{
		{
			Id:    "cash",
			Label: "À VISTA",
			Price: "R$2000,00",
			Image: "https://images.unsplash.com/photo-1507679799987-c73779587ccf?auto=format&fit=crop&w=600&q=80",
		},
		{
			Id:    "installments-8x",
			Label: "8x",
			Price: "R$250,00",
			Image: "https://images.unsplash.com/photo-1434030216411-0b793f4b4173?auto=format&fit=crop&w=600&q=80",
		},
		{
			Id:    "installments-12x",
			Label: "12x",
			Price: "R$167,00",
			Image: "https://images.unsplash.com/photo-1450101499163-c8848c66ca85?auto=format&fit=crop&w=600&q=80",
		},
	}
}

func Benefits() []BenefitSection {
	return []BenefitSection{
		{
			Title: "Fundamentos do Recrutamento e Seleção",
			Points: []string{
				"O que é recrutamento e seleção e por que são importantes.",
				"Diferença entre recrutamento (atrair) e seleção (escolher).",
				"Erros comuns e impactos de contratações malfeitas.",
				"Benefícios de ter um processo estruturado, mesmo que simples.",
			},
		},
		{
			Title: "Planejamento da Contratação",
			Points: []string{
				"Identificação da necessidade de um novo funcionário.",
				"Análise e descrição do cargo (funções, perfil e competências desejadas).",
				"Definição do tipo de contratação e do cronograma do processo.",
				"Preparação dos materiais: modelo de vaga, roteiro de entrevista, ficha de avaliação.",
			},
		},
		{
			Title: "Recrutamento: Como Atrair os Candidatos Certos",
			Points: []string{
				"Tipos de recrutamento: interno e externo.",
				"Onde e como divulgar as vagas (redes sociais, indicações, grupos locais).",
				"Como escrever uma vaga atrativa e clara.",
				"Dicas para comunicar a cultura e os valores da empresa.",
			},
		},
		{
			Title: "Seleção: Escolhendo o Candidato Ideal",
			Points: []string{
				"Triagem de currículos e contatos iniciais.",
				"Entrevistas eficazes (como se preparar, perguntas certas, o que observar).",
				"Testes simples e dinâmicas práticas para avaliar o perfil.",
				"Tomada de decisão e comparação entre candidatos.",
				"Cuidados éticos e legais (evitar discriminação, proteger dados).",
			},
		},
		{
			Title: "Integração e Acompanhamento",
			Points: []string{
				"Boas práticas de integração (onboarding).",
				"Apresentação da equipe, da cultura e das rotinas.",
				"Acompanhamento dos primeiros dias de trabalho.",
				"Indicadores simples de sucesso (adaptação, desempenho, rotatividade).",
				"Como melhorar o processo a cada nova contratação.",
			},
		},
	}
}

func FindOption(id string) (Option, error) {
	for _, option := range Options() {
		if option.Id == id {
			return option, nil
		}
	}
	return Option{}, ErrPlanNotFound
}

// Confirm builds the confirmation toast and the prefilled WhatsApp chat for a plan.
func Confirm(id string) (Purchase, error) {
	option, err := FindOption(id)
	if err != nil {
		return Purchase{}, err
	}
	text := fmt.Sprintf("Olá! Confirmei a compra do plano %s por %s. Podemos seguir com os próximos passos?",
		option.Label, option.Price)
	return Purchase{
		Plan:        option,
		Message:     fmt.Sprintf("Compra do plano %s confirmada!", option.Label),
		WhatsappUrl: "https://wa.me/" + whatsappNumber + "?text=" + url.QueryEscape(text),
	}, nil
}
