package dto

import (
	"testing"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "sekolahku_backend/internals/features/school/marks/model"
	studentModel "sekolahku_backend/internals/features/school/students/model"
)

func TestCreateMarksComputesPercentage(t *testing.T) {
	req := CreateMarksRequest{
		StudentID:  uuid.New(),
		SubjectID:  uuid.New(),
		ClassID:    uuid.New(),
		Marks:      42,
		TotalMarks: 50,
	}
	rec := req.ToModel()
	assert.Equal(t, 84.0, rec.MarksPercentage)
	assert.False(t, rec.MarksDate.IsZero(), "date defaults to now")
}

func TestCreateMarksZeroTotal(t *testing.T) {
	rec := CreateMarksRequest{Marks: 10, TotalMarks: 0}.ToModel()
	assert.Equal(t, 0.0, rec.MarksPercentage)
}

func TestUpdateMarksRecomputesOnlyWhenBothPresent(t *testing.T) {
	base := m.MarksModel{MarksObtained: 40, MarksTotal: 50, MarksPercentage: 80}

	t.Run("marks only keeps stored percentage", func(t *testing.T) {
		rec := base
		var req UpdateMarksRequest
		require.NoError(t, sonic.Unmarshal([]byte(`{"marks":45}`), &req))
		req.Apply(&rec)
		assert.Equal(t, 45.0, rec.MarksObtained)
		assert.Equal(t, 80.0, rec.MarksPercentage)
	})

	t.Run("totalMarks only keeps stored percentage", func(t *testing.T) {
		rec := base
		var req UpdateMarksRequest
		require.NoError(t, sonic.Unmarshal([]byte(`{"totalMarks":100}`), &req))
		req.Apply(&rec)
		assert.Equal(t, 100.0, rec.MarksTotal)
		assert.Equal(t, 80.0, rec.MarksPercentage)
	})

	t.Run("both present recomputes", func(t *testing.T) {
		rec := base
		var req UpdateMarksRequest
		require.NoError(t, sonic.Unmarshal([]byte(`{"marks":90,"totalMarks":100}`), &req))
		req.Apply(&rec)
		assert.Equal(t, 90.0, rec.MarksPercentage)
	})

	t.Run("null values do not recompute", func(t *testing.T) {
		rec := base
		var req UpdateMarksRequest
		require.NoError(t, sonic.Unmarshal([]byte(`{"marks":null,"totalMarks":null}`), &req))
		req.Apply(&rec)
		assert.Equal(t, 40.0, rec.MarksObtained)
		assert.Equal(t, 80.0, rec.MarksPercentage)
	})
}

func TestGroupPerformance(t *testing.T) {
	alia := uuid.New()
	budi := uuid.New()
	records := []m.MarksModel{
		{MarksStudentID: alia, MarksPercentage: 80, Student: &studentModel.StudentModel{StudentFirstName: "Alia", StudentLastName: "Putri"}},
		{MarksStudentID: budi, MarksPercentage: 60, Student: &studentModel.StudentModel{StudentFirstName: "Budi"}},
		{MarksStudentID: alia, MarksPercentage: 90},
	}

	out := GroupPerformance(records)
	require.Len(t, out, 2)

	assert.Equal(t, "Alia Putri", out[0].StudentName)
	assert.Equal(t, []float64{80, 90}, out[0].Marks)
	assert.Equal(t, 85.0, out[0].Average)

	assert.Equal(t, "Budi", out[1].StudentName)
	assert.Equal(t, 60.0, out[1].Average)
}

func TestGroupPerformanceEmpty(t *testing.T) {
	assert.Empty(t, GroupPerformance(nil))
}
