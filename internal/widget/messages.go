package widget

const (
	StatusLoading       = "Carregando moedas..."
	StatusReady         = "Pronto para converter."
	StatusConverting    = "Convertendo..."
	StatusInvalidAmount = "Informe um valor válido."
	StatusFailed        = "Não foi possível concluir a conversão. Tente novamente em instantes."

	ResultPlaceholder = "O resultado aparecerá aqui"

	unitRateFormat = "Taxa: 1 %s → %s %s (em %s)"
	metaFormat     = "Fonte: Frankfurter (ECB) • Última atualização: %s"
)
