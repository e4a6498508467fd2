package interview

func scoreProperty() map[string]any {
	return map[string]any{
		"type":    "integer",
		"minimum": 0,
		"maximum": 100,
	}
}

func countProperty() map[string]any {
	return map[string]any{
		"type":    "integer",
		"minimum": 0,
	}
}

// AnalysisSchema is the JSON schema of the evaluation object the model is
// asked to return.
func AnalysisSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"required": []any{
			"analysis",
			"feedback",
			"followup",
			"serverReply",
		},
		"properties": map[string]any{
			"analysis": map[string]any{
				"type": "object",
				"required": []any{
					"score",
					"clarity",
					"conciseness",
					"structure",
					"fillers",
					"words",
				},
				"properties": map[string]any{
					"score":       scoreProperty(),
					"clarity":     scoreProperty(),
					"conciseness": scoreProperty(),
					"structure":   scoreProperty(),
					"fillers":     countProperty(),
					"words":       countProperty(),
				},
			},
			"feedback": map[string]any{
				"type": "string",
			},
			"followup": map[string]any{
				"type": "string",
			},
			"serverReply": map[string]any{
				"type": "string",
			},
		},
	}
}
