package luciv1

type CustomConfig struct {
	Id                      int64   `json:"id"`
	Reference               string  `json:"reference"`
	ServerName              *string `json:"server_name,omitempty"`
	MainChannel             *string `json:"main_channel,omitempty"`
	AllowAutoSendMessages   bool    `json:"allow_auto_send_messages"`
	FilterOffensiveMessages bool    `json:"filter_offensive_messages"`
	AllowLearningFromChat   bool    `json:"allow_learning_from_chat"`
}

type GetCustomConfigRequest struct {
	Reference string `json:"reference"`
}

func (x *GetCustomConfigRequest) GetReference() string {
	if x != nil {
		return x.Reference
	}
	return ""
}

// UpdateCustomConfigRequest only changes the fields that are present.
type UpdateCustomConfigRequest struct {
	Reference               string  `json:"reference"`
	ServerName              *string `json:"server_name,omitempty"`
	MainChannel             *string `json:"main_channel,omitempty"`
	AllowAutoSendMessages   *bool   `json:"allow_auto_send_messages,omitempty"`
	FilterOffensiveMessages *bool   `json:"filter_offensive_messages,omitempty"`
	AllowLearningFromChat   *bool   `json:"allow_learning_from_chat,omitempty"`
}

func (x *UpdateCustomConfigRequest) GetReference() string {
	if x != nil {
		return x.Reference
	}
	return ""
}
