package memorable

import "fmt"

const exampleEN = `Summary: The text discusses China's automotive industry growth, highlighting how BYD took a decade to develop their battery swapping technology.

Memorable Quantities:
• 10 years of development = Length equivalent to 10 shipping containers (20ft) lined up (calculation: 10 years ≈ 10 containers × 20ft = 200ft of linear progress)
• 500 million investment = Weight equivalent to 185,185 standard bricks stacked (calculation: 500,000,000 ÷ 2.7kg per brick = 185,185 bricks)`

const examplePT = `Sumário: O texto discute o crescimento da indústria automotiva chinesa, destacando como a empresa BYD levou uma década para desenvolver sua tecnologia de troca de baterias.

Quantidades Memoráveis:
• 10 anos de desenvolvimento = Equivalente ao comprimento de 10 contêineres de transporte (20ft) alinhados (cálculo: 10 anos ≈ 10 contêineres × 20ft = 200ft de progresso linear)
• 500 milhões de investimento = Peso equivalente a 185.185 tijolos padrão empilhados (cálculo: 500.000.000 ÷ 2.7kg por tijolo = 185.185 tijolos)`

// buildPrompt renders the system prompt for one comparison request.
func buildPrompt(text, language, category, example, references string) string {
	return fmt.Sprintf(`You are a specialized assistant that helps make quantities more memorable through clear comparisons.

Task: Read the following text and identify significant quantities. Create memorable comparisons to help visualize these quantities.
Text: "%s"

Requirements:
1. Respond in %s
2. Focus on the most important quantities
3. Use clear, everyday language
4. Make comparisons that are:
   - Easy to visualize
   - Mathematically accurate
   - Related to the %s category when possible
5. Show calculations in parentheses
6. Keep the tone natural and engaging

Here's exactly how your response should look:

%s

Available reference measurements for comparisons:
%s`, text, language, category, example, references)
}
