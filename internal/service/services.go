// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/insider-vault/internal/access"
	"github.com/MKhiriev/insider-vault/internal/config"
	"github.com/MKhiriev/insider-vault/internal/logger"
	"github.com/MKhiriev/insider-vault/internal/store"
)

type Services struct {
	AppInfoService AppInfoService
	RecordService  RecordService
}

func NewServices(records store.Records, flow Workflow, gate DecryptionGate, signer access.Signer, session Activity, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	recordService := NewRecordValidationService().Wrap(
		NewRecordService(records, flow, gate, signer, session, logger),
	)

	return &Services{
		AppInfoService: appInfo,
		RecordService:  recordService,
	}, nil
}
