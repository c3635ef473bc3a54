package service

import "promptrelay.app/relay/common/llm"

type Services struct {
	llm           llm.Client
	generationCfg GenerationConfig
}

func NewServices(client llm.Client, generationCfg GenerationConfig) *Services {
	return &Services{
		llm:           client,
		generationCfg: generationCfg,
	}
}

func (s *Services) Generation() GenerationService {
	return NewGenerationService(s.llm, s.generationCfg)
}
