package grpc

import (
	"context"
	"encoding/json"
	"fmt"

	z "github.com/Oudwins/zog"
	"golang.org/x/time/rate"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

func validatePatientID(patientID *string) z.ZogIssueList {
	var patientIdValidator = z.String().Min(1).Required()
	return patientIdValidator.Validate(patientID)
}

// toValue goes through JSON so that replies use the same field names as the
// HTTP API.
func toValue(v any) (*structpb.Value, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	out := &structpb.Value{}
	if err := out.UnmarshalJSON(raw); err != nil {
		return nil, err
	}
	return out, nil
}

func reply(success bool, message string, fields map[string]any) (*structpb.Struct, error) {
	out := &structpb.Struct{Fields: map[string]*structpb.Value{
		"success": structpb.NewBoolValue(success),
		"message": structpb.NewStringValue(message),
	}}
	for k, v := range fields {
		val, err := toValue(v)
		if err != nil {
			return nil, status.Errorf(codes.Internal, "failed to encode %s: %v", k, err)
		}
		out.Fields[k] = val
	}
	return out, nil
}

func failure(message string) (*structpb.Struct, error) {
	return reply(false, message, nil)
}

func (s *MonitorServer) Start(ctx context.Context, _ *emptypb.Empty) (*structpb.Struct, error) {
	changed := s.Monitor.Start()
	return reply(true, "OK", map[string]any{"running": true, "changed": changed})
}

func (s *MonitorServer) Stop(ctx context.Context, _ *emptypb.Empty) (*structpb.Struct, error) {
	changed := s.Monitor.Stop()
	return reply(true, "OK", map[string]any{"running": false, "changed": changed})
}

func (s *MonitorServer) GetState(ctx context.Context, _ *emptypb.Empty) (*structpb.Struct, error) {
	return reply(true, "OK", map[string]any{"state": s.Monitor.Snapshot()})
}

func (s *MonitorServer) InjectEvent(ctx context.Context, req *wrapperspb.StringValue) (*structpb.Struct, error) {
	if err := validatePatientID(&req.Value); err != nil {
		return failure(fmt.Sprintf("validation error: %v", err))
	}

	until, err := s.Monitor.Event.InjectEvent(req.Value)
	if err != nil {
		return failure(err.Error())
	}

	return reply(true, "OK", map[string]any{"patientId": req.Value, "eventUntil": until})
}

func (s *MonitorServer) GetPatientVitals(ctx context.Context, req *wrapperspb.StringValue) (*structpb.Struct, error) {
	if err := validatePatientID(&req.Value); err != nil {
		return failure(fmt.Sprintf("validation error: %v", err))
	}

	view, err := s.Monitor.PatientVitals(req.Value)
	if err != nil {
		return failure(err.Error())
	}

	return reply(true, "OK", map[string]any{"patient": view})
}

func (s *MonitorServer) GetAlerts(ctx context.Context, _ *emptypb.Empty) (*structpb.Struct, error) {
	return reply(true, "OK", map[string]any{
		"alerts":  s.Monitor.Alert.GetTopAlerts(),
		"metrics": s.Monitor.Alert.GetMetrics(),
	})
}

func (s *MonitorServer) UndoRules(ctx context.Context, _ *emptypb.Empty) (*structpb.Struct, error) {
	rules, err := s.Monitor.Rules.UndoRules()
	if err != nil {
		return reply(false, err.Error(), map[string]any{"rules": rules})
	}
	return reply(true, "OK", map[string]any{"rules": rules})
}

func (s *MonitorServer) SetLimiter(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	fields := req.GetFields()

	patientID := fields["patientId"].GetStringValue()
	if err := validatePatientID(&patientID); err != nil {
		return failure(fmt.Sprintf("validation error: %v", err))
	}

	patientRate := fields["rate"].GetNumberValue()
	var rateValidator = z.Float64().Required()
	if err := rateValidator.Validate(&patientRate); err != nil {
		return failure(fmt.Sprintf("validation error: %v", err))
	}

	patientBurst := int(fields["burst"].GetNumberValue())
	var burstValidator = z.Int().Required()
	if err := burstValidator.Validate(&patientBurst); err != nil {
		return failure(fmt.Sprintf("validation error: %v", err))
	}

	if s.RateLimiterStore == nil {
		return failure("RateLimiterStore is not used. No effect.")
	}

	if !s.RateLimiterStore.SetLimiter(patientID, rate.Limit(patientRate), patientBurst) {
		return failure(fmt.Sprintf("unknown patient: %s", patientID))
	}
	return reply(true, "OK", nil)
}
